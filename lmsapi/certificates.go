package lmsapi

import (
	"context"
	"fmt"
)

type Certificate struct {
	ID                int64  `json:"id"`
	UserID            int64  `json:"userId"`
	UserName          string `json:"userName"`
	CourseID          int64  `json:"courseId"`
	CourseTitle       string `json:"courseTitle"`
	CertificateNumber string `json:"certificateNumber"`
	IssuedAt          string `json:"issuedAt"`
}

func (c *Client) MyCertificates(ctx context.Context, token string) ([]Certificate, error) {
	return get[[]Certificate](c, ctx, token, "/certificates/my", nil)
}

func (c *Client) GetCertificate(ctx context.Context, token string, id int64) (Certificate, error) {
	return get[Certificate](c, ctx, token, fmt.Sprintf("/certificates/%d", id), nil)
}

// CertificatePDF returns the rendered certificate as an opaque byte stream.
func (c *Client) CertificatePDF(ctx context.Context, token string, id int64) ([]byte, string, error) {
	return doBytes(c, ctx, token, fmt.Sprintf("/certificates/%d/pdf", id))
}
