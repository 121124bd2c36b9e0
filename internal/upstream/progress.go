package upstream

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"signflow/internal/domain"
)

const progressLogPageSize = 20

// ListProgressLogs fetches every page of an order's progress logs, in
// creation order.
func (c *Client) ListProgressLogs(ctx context.Context, orderID uint) ([]domain.ProgressLog, error) {
	var logs []domain.ProgressLog

	page := 1
	for {
		var pageLogs []domain.ProgressLog
		url := c.apiURL("/api/progress-logs/order/%d?page=%d&size=%d", orderID, page, progressLogPageSize)
		env, err := c.doJSON(ctx, http.MethodGet, url, nil, &pageLogs)
		if err != nil {
			return nil, err
		}
		logs = append(logs, pageLogs...)

		if env.TotalPages == 0 || env.CurrentPage >= env.TotalPages {
			break
		}
		page++
	}

	return logs, nil
}

func (c *Client) ListProgressLogImages(ctx context.Context, logID uint) ([]domain.ProgressLogImage, error) {
	var images []domain.ProgressLogImage
	_, err := c.doJSON(ctx, http.MethodGet, c.apiURL("/api/progress-logs/%d/images", logID), nil, &images)
	if err != nil {
		return nil, err
	}
	return images, nil
}

type ProgressLogUpload struct {
	Filename string
	Content  io.Reader
}

type CreateProgressLogInput struct {
	OrderID     uint
	Status      domain.ProgressStatus
	Description string
	Images      []ProgressLogUpload
}

// CreateProgressLog posts a production update (multipart: description,
// status, zero or more photos).
func (c *Client) CreateProgressLog(ctx context.Context, input CreateProgressLogInput) (*domain.ProgressLog, error) {
	build := func(w *multipart.Writer) error {
		if err := w.WriteField("orderId", fmt.Sprintf("%d", input.OrderID)); err != nil {
			return err
		}
		if err := w.WriteField("status", string(input.Status)); err != nil {
			return err
		}
		if err := w.WriteField("description", input.Description); err != nil {
			return err
		}
		for _, upload := range input.Images {
			part, err := w.CreateFormFile("images", upload.Filename)
			if err != nil {
				return err
			}
			if _, err := io.Copy(part, upload.Content); err != nil {
				return err
			}
		}
		return nil
	}

	var log domain.ProgressLog
	_, err := c.doMultipart(ctx, http.MethodPost, c.apiURL("/api/progress-logs"), build, &log)
	if err != nil {
		return nil, err
	}
	return &log, nil
}
