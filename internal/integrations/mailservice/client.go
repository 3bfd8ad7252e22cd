package mailservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
)

// Client клиент для работы с внешним почтовым сервисом
// Письма отправляются после успешного сохранения бронирования/заказа и
// только в режиме fire-and-forget: ошибка отправки логируется вызывающим
// кодом и никогда не откатывает и не блокирует принятый запрос
type Client struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(baseURL, apiKey, from string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    from,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendReservationConfirmation отправляет письмо-подтверждение бронирования
func (c *Client) SendReservationConfirmation(ctx context.Context, res *domain.Reservation) error {
	subject := fmt.Sprintf("Reservation %s - %s %s",
		res.ConfirmationCode, res.Date.Format(domain.DateFormat), res.StartTime)

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", res.CustomerName)
	fmt.Fprintf(&b, "Your table reservation has been received.\n\n")
	fmt.Fprintf(&b, "Confirmation code: %s\n", res.ConfirmationCode)
	fmt.Fprintf(&b, "Date: %s\n", res.Date.Format(domain.DateFormat))
	fmt.Fprintf(&b, "Time: %s\n", res.StartTime)
	fmt.Fprintf(&b, "Party size: %d\n", res.PartySize)
	fmt.Fprintf(&b, "Status: %s\n", res.Status)

	return c.send(ctx, res.CustomerEmail, subject, b.String())
}

// SendOrderReceipt отправляет письмо-чек по заказу
// Суммы в письме - только серверные (domain.Order хранит исключительно их)
func (c *Client) SendOrderReceipt(ctx context.Context, o *domain.Order) error {
	subject := fmt.Sprintf("Order %s confirmation", o.OrderNumber)

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", o.CustomerName)
	fmt.Fprintf(&b, "Your order %s has been received.\n\n", o.OrderNumber)
	for _, line := range o.Lines {
		fmt.Fprintf(&b, "%dx %s - %.2f\n", line.Quantity, line.Name, line.LineTotal)
	}
	fmt.Fprintf(&b, "\nSubtotal: %.2f\nTax: %.2f\nTotal: %.2f\n", o.Subtotal, o.Tax, o.Total)

	return c.send(ctx, o.CustomerEmail, subject, b.String())
}

func (c *Client) send(ctx context.Context, to, subject, text string) error {
	body, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      to,
		Subject: subject,
		Text:    text,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/emails", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, resp.StatusCode, string(respBody))
	}

	c.log.Info("Email sent to %s: %s", to, subject)
	return nil
}
