// Package notify pushes trip reminders through an ntfy server.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

type AlertType string

const (
	AlertTypeTripUpcoming  AlertType = "trip_upcoming"
	AlertTypeReminderError AlertType = "reminder_error"
)

// Priority follows the ntfy 1..5 scale.
type Priority int

const (
	PriorityLow     Priority = 2
	PriorityDefault Priority = 3
	PriorityHigh    Priority = 4
)

// NTFYConfig holds the ntfy server and topic. Username and Password are
// optional basic auth for self-hosted servers.
type NTFYConfig struct {
	ServerURL string
	Topic     string
	Username  string
	Password  string
	Enabled   bool
}

// NTFYMessage is the ntfy publish payload.
type NTFYMessage struct {
	Topic    string   `json:"topic"`
	Title    string   `json:"title,omitempty"`
	Message  string   `json:"message"`
	Priority int      `json:"priority,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// NTFYClient publishes messages to one topic. Error alerts are rate
// limited per alert type so a wedged reminder job cannot spam the phone;
// trip reminders are per-trip and always go out.
type NTFYClient struct {
	config     NTFYConfig
	httpClient *http.Client

	mu         sync.Mutex
	lastAlerts map[AlertType]time.Time
	minGap     time.Duration
}

func NewNTFYClient(config NTFYConfig) *NTFYClient {
	if config.ServerURL == "" {
		config.ServerURL = "https://ntfy.sh"
	}
	return &NTFYClient{
		config:     config,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		lastAlerts: make(map[AlertType]time.Time),
		minGap:     time.Hour,
	}
}

// IsEnabled reports whether the client has a topic to publish to.
func (c *NTFYClient) IsEnabled() bool {
	return c.config.Enabled && c.config.Topic != ""
}

// AlertTripUpcoming sends a reminder that a trip starts in daysOut days.
func (c *NTFYClient) AlertTripUpcoming(tripName, destination, startDate string, daysOut int) error {
	title := fmt.Sprintf("%s in %d days", tripName, daysOut)
	if daysOut == 0 {
		title = fmt.Sprintf("%s starts today", tripName)
	}
	message := fmt.Sprintf("%s, departing %s", destination, startDate)
	if !c.IsEnabled() {
		return nil
	}
	return c.publish(title, message, PriorityHigh, []string{"airplane", "calendar"})
}

// AlertReminderError reports a failed reminder run, at most once per hour.
func (c *NTFYClient) AlertReminderError(err error) error {
	if !c.IsEnabled() {
		return nil
	}

	c.mu.Lock()
	if last, ok := c.lastAlerts[AlertTypeReminderError]; ok && time.Since(last) < c.minGap {
		c.mu.Unlock()
		return nil
	}
	c.lastAlerts[AlertTypeReminderError] = time.Now()
	c.mu.Unlock()

	return c.publish("Trip reminder run failed", err.Error(), PriorityDefault, []string{"rotating_light", "x"})
}

func (c *NTFYClient) publish(title, message string, priority Priority, tags []string) error {
	payload, err := json.Marshal(NTFYMessage{
		Topic:    c.config.Topic,
		Title:    title,
		Message:  message,
		Priority: int(priority),
		Tags:     tags,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal ntfy message: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.config.ServerURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to build ntfy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.Username != "" && c.config.Password != "" {
		req.SetBasicAuth(c.config.Username, c.config.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("ntfy returned error status: %d", resp.StatusCode)
	}
	return nil
}
