package service

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/support-chat-service/internal/persistence"
)

func TestQRService_DataURL(t *testing.T) {
	svc := NewQRService(&persistence.Redis{}, "http://localhost:3000/", zap.NewNop())

	assert.Equal(t, "http://localhost:3000/case/CASE-1", svc.CaseURL("CASE-1"), "trailing slash on the base is dropped")

	dataURL, err := svc.DataURL(context.Background(), "CASE-1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))

	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, "data:image/png;base64,"))
	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
