package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/spec-kit/support-chat-service/internal/persistence"
)

const (
	qrCacheTTL = time.Hour
	qrSize     = 256
)

// QRService renders hand-off QR codes pointing a phone at a case page.
// Rendered images are cached in Redis keyed by case id.
type QRService struct {
	redis   *persistence.Redis
	baseURL string
	logger  *zap.Logger
}

// NewQRService constructs the service. baseURL is the externally reachable
// origin of the case UI.
func NewQRService(redis *persistence.Redis, baseURL string, logger *zap.Logger) *QRService {
	return &QRService{
		redis:   redis,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// CaseURL returns the public page for a case.
func (s *QRService) CaseURL(caseID string) string {
	return fmt.Sprintf("%s/case/%s", s.baseURL, caseID)
}

// DataURL returns the case QR code as a data: URL holding a PNG.
func (s *QRService) DataURL(ctx context.Context, caseID string) (string, error) {
	key := "qr:case:" + caseID

	if s.redis != nil && s.redis.Client != nil {
		if cached, err := s.redis.Client.Get(ctx, key).Result(); err == nil && cached != "" {
			return cached, nil
		}
	}

	png, err := qrcode.Encode(s.CaseURL(caseID), qrcode.Medium, qrSize)
	if err != nil {
		return "", err
	}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)

	if s.redis != nil && s.redis.Client != nil {
		if err := s.redis.Client.Set(ctx, key, dataURL, qrCacheTTL).Err(); err != nil {
			s.logger.Warn("failed to cache qr code", zap.String("case_id", caseID), zap.Error(err))
		}
	}
	return dataURL, nil
}
