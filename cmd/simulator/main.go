package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/premier-motors/internal/catalog"
	"github.com/ukydev/premier-motors/internal/models"
)

// Client drives the bridge API the way the mobile app does.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// NewClient creates a client for an API base URL such as http://127.0.0.1:8080/api.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// do sends body as JSON and decodes the response into out when it is not nil.
func (c *Client) do(method, path string, body interface{}, out interface{}, wantStatus int) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	req, err := http.NewRequest(method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, bytes.TrimSpace(msg))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Login signs in and keeps the token for later calls.
func (c *Client) Login(email, password string) error {
	var resp models.LoginResponse
	if err := c.do(http.MethodPost, "/auth/login", models.LoginRequest{Email: email, Password: password}, &resp, http.StatusOK); err != nil {
		return err
	}
	c.Token = resp.Token
	return nil
}

type vehicle struct {
	Brand   models.Brand
	Model   string
	Year    int
	Mileage int
}

func randomVehicle(rng *rand.Rand) vehicle {
	brands := []models.Brand{models.BrandChangan, models.BrandGWM, models.BrandZX}
	brand := brands[rng.Intn(len(brands))]
	modelList := catalog.ModelsFor(brand)
	return vehicle{
		Brand:   brand,
		Model:   modelList[rng.Intn(len(modelList))],
		Year:    2019 + rng.Intn(7),
		Mileage: rng.Intn(30000),
	}
}

// runCustomer plays one customer: pay off a maintenance plan, then book and
// complete a maintenance service for the same vehicle.
func runCustomer(c *Client, rng *rand.Rand) error {
	v := randomVehicle(rng)
	frequencies := []string{"weekly", "biweekly", "monthly"}
	methods := []models.PaymentMethod{models.PaymentCard, models.PaymentApp, models.PaymentCash}
	freq := frequencies[rng.Intn(len(frequencies))]

	var plan models.MaintenancePlan
	err := c.do(http.MethodPost, "/plans", map[string]interface{}{
		"vehicle_brand":   v.Brand,
		"vehicle_model":   v.Model,
		"year":            v.Year,
		"current_mileage": v.Mileage,
		"payment_method":  methods[rng.Intn(len(methods))],
		"frequency":       freq,
	}, &plan, http.StatusCreated)
	if err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}

	logger := log.WithFields(log.Fields{
		"plan_id": plan.ID,
		"vehicle": fmt.Sprintf("%s %s %d", v.Brand, v.Model, v.Year),
	})
	logger.WithFields(log.Fields{
		"total":        plan.TotalAmount,
		"installments": plan.TotalInstallments,
		"amount":       plan.InstallmentAmount,
	}).Info("Plan created")

	for plan.Status == models.PlanActive {
		if err := c.do(http.MethodPost, "/plans/"+plan.ID+"/payments", nil, &plan, http.StatusOK); err != nil {
			return fmt.Errorf("failed to pay installment: %w", err)
		}
		logger.WithFields(log.Fields{
			"paid": plan.PaidInstallments,
			"next": plan.NextPaymentDate.Format("2006-01-02"),
		}).Debug("Installment paid")
	}
	logger.WithField("status", plan.Status).Info("Plan settled")

	compatible := catalog.Compatible(v.Brand, v.Model, models.CategoryMaintenance)
	if len(compatible) == 0 {
		return nil
	}
	svc := compatible[rng.Intn(len(compatible))]
	mileage := v.Mileage

	var rec models.ServiceRecord
	err = c.do(http.MethodPost, "/services/bookings", map[string]interface{}{
		"service_id": svc.ID,
		"vehicle_info": models.VehicleInfo{
			Brand:   v.Brand,
			Model:   v.Model,
			Year:    v.Year,
			Mileage: &mileage,
		},
	}, &rec, http.StatusCreated)
	if err != nil {
		return fmt.Errorf("failed to book service: %w", err)
	}
	if err := c.do(http.MethodPost, "/services/upcoming/"+rec.ID+"/complete", nil, &rec, http.StatusOK); err != nil {
		return fmt.Errorf("failed to complete service: %w", err)
	}
	logger.WithFields(log.Fields{
		"service": svc.Name,
		"total":   rec.Total,
	}).Info("Service completed")
	return nil
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func main() {
	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://127.0.0.1:8080/api"
	}
	email := os.Getenv("SIM_EMAIL")
	if email == "" {
		email = "demo@premiermotors.com"
	}
	password := os.Getenv("SIM_PASSWORD")
	if password == "" {
		password = "demo123"
	}
	customers := getEnvInt("SIM_CUSTOMERS", 5)

	log.WithFields(log.Fields{
		"api_url":   apiURL,
		"customers": customers,
	}).Info("Starting customer simulation")

	c := NewClient(apiURL)
	if err := c.Login(email, password); err != nil {
		log.WithError(err).Fatal("Login failed")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	failed := 0
	for i := 0; i < customers; i++ {
		if err := runCustomer(c, rng); err != nil {
			log.WithError(err).WithField("customer", i+1).Error("Customer run failed")
			failed++
		}
	}

	var theme struct {
		Theme models.Theme `json:"theme"`
	}
	if err := c.do(http.MethodPost, "/theme/toggle", nil, &theme, http.StatusOK); err != nil {
		log.WithError(err).Warn("Failed to toggle theme")
	}

	var history []models.ServiceRecord
	if err := c.do(http.MethodGet, "/services/history", nil, &history, http.StatusOK); err != nil {
		log.WithError(err).Warn("Failed to read history")
	}

	log.WithFields(log.Fields{
		"completed_services": len(history),
		"failed":             failed,
		"theme":              theme.Theme,
	}).Info("Simulation finished")
	if failed > 0 {
		os.Exit(1)
	}
}
