package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.JSONFormatter{})
	return &logger{entry: logrus.NewEntry(base)}, buf
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())
	require.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		contains []string
		missing  []string
	}{
		{
			name:     "development drops noisy fields",
			env:      "development",
			contains: []string{`"method":"GET"`, `"business_id":7`},
			missing:  []string{`"user_agent"`},
		},
		{
			name:     "production keeps every field",
			env:      "production",
			contains: []string{`"method":"GET"`, `"business_id":7`, `"user_agent":"curl"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", tt.env)
			l, buf := newBufferedLogger()

			l.WithFields(Fields{
				"method":      "GET",
				"business_id": 7,
				"user_agent":  "curl",
			}).Info("request")

			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.missing {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestWithContext(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	l, buf := newBufferedLogger()
	ctx, id := WithCorrelationID(context.Background())

	l.WithContext(ctx).Info("tagged")

	assert.Contains(t, buf.String(), id)
}
