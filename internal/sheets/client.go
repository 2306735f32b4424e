package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rAtAtUY6/CoW-bot/internal/model"
)

// Client отправляет подтверждённые записи в Google Apps Script,
// который пишет их в таблицу. Без повторов: неудачная отправка
// возвращается вызывающему как есть.
type Client struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewClient создаёт клиент отправки записей
func NewClient(url string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type payload struct {
	Teacher   string `json:"teacher"`
	Student   string `json:"student"`
	Date      string `json:"date"`
	Price     int    `json:"price"`
	Occurred  bool   `json:"occurred"`
	Timestamp string `json:"timestamp"`
}

type ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit отправляет одну запись и разбирает подтверждение.
// Сетевые ошибки, неожиданный статус, нечитаемый ответ и явный
// success=false для вызывающего неразличимы; причина остаётся в логах.
func (c *Client) Submit(ctx context.Context, rec model.Record) error {
	requestID := uuid.NewString()

	body, err := json.Marshal(payload{
		Teacher:   rec.Teacher,
		Student:   rec.Student,
		Date:      rec.Date,
		Price:     rec.Price,
		Occurred:  rec.Occurred,
		Timestamp: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Sheets request failed",
			zap.String("request_id", requestID),
			zap.String("teacher", rec.Teacher),
			zap.String("student", rec.Student),
			zap.String("date", rec.Date),
			zap.Error(err))
		return fmt.Errorf("send record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Sheets returned unexpected status",
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("send record: unexpected status %d", resp.StatusCode)
	}

	var a ack
	if err := json.NewDecoder(resp.Body).Decode(&a); err != nil {
		c.logger.Error("Sheets response malformed",
			zap.String("request_id", requestID),
			zap.Error(err))
		return fmt.Errorf("decode response: %w", err)
	}

	if !a.Success {
		c.logger.Error("Sheets rejected record",
			zap.String("request_id", requestID),
			zap.String("message", a.Message),
			zap.String("teacher", rec.Teacher),
			zap.String("student", rec.Student))
		return fmt.Errorf("sheets rejected record: %s", a.Message)
	}

	c.logger.Info("Record written to sheets",
		zap.String("request_id", requestID),
		zap.String("teacher", rec.Teacher),
		zap.String("student", rec.Student),
		zap.String("date", rec.Date))

	return nil
}
