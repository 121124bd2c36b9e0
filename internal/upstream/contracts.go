package upstream

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"signflow/internal/domain"
)

func (c *Client) GetContractByOrder(ctx context.Context, orderID uint) (*domain.Contract, error) {
	var contract domain.Contract
	_, err := c.doJSON(ctx, http.MethodGet, c.apiURL("/api/contracts/order/%d", orderID), nil, &contract)
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// UploadSignedContract sends the signed copy as a multipart file. Valid only
// while the contract awaits a signature; the upstream enforces that too.
func (c *Client) UploadSignedContract(ctx context.Context, contractID uint, filename string, file io.Reader) error {
	build := func(w *multipart.Writer) error {
		part, err := w.CreateFormFile("file", filename)
		if err != nil {
			return err
		}
		_, err = io.Copy(part, file)
		return err
	}
	_, err := c.doMultipart(ctx, http.MethodPost, c.apiURL("/api/contracts/%d/signed", contractID), build, nil)
	return err
}

type discussionRequest struct {
	Message string `json:"message"`
}

func (c *Client) RequestContractDiscussion(ctx context.Context, contractID uint, message string) error {
	_, err := c.doJSON(ctx, http.MethodPost, c.apiURL("/api/contracts/%d/discuss", contractID), discussionRequest{Message: message}, nil)
	return err
}
