package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент сервиса уведомлений (WhatsApp / email рассылка клиники)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendAppointmentEvent отправляет событие записи в сервис уведомлений
func (c *Client) SendAppointmentEvent(ctx context.Context, event AppointmentEvent) error {
	url := fmt.Sprintf("%s/internal/notifications/appointments", c.baseURL)

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// SendAppointmentEventWithGracefulDegradation отправляет событие с graceful degradation
// При недоступности сервиса уведомлений возвращает ErrServiceDegraded,
// запись при этом остается созданной, уведомление пропускается
func (c *Client) SendAppointmentEventWithGracefulDegradation(ctx context.Context, event AppointmentEvent) error {
	c.log.Info("Sending notification event=%s for appointment_id=%d", event.Event, event.AppointmentID)

	if err := c.SendAppointmentEvent(ctx, event); err != nil {
		// Недоступность сервиса уведомлений не должна блокировать запись на прием.
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("Notify service unavailable, applying graceful degradation for appointment_id=%d: %v", event.AppointmentID, err)
		return fmt.Errorf("%w: appointment_id=%d, error=%v", ErrServiceDegraded, event.AppointmentID, err)
	}

	c.log.Info("Successfully sent notification event=%s for appointment_id=%d", event.Event, event.AppointmentID)
	return nil
}
