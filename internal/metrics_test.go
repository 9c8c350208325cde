package internal

import (
	"context"
	"cpay/entity"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMetrics_CountsPayments(t *testing.T) {
	metrics := NewMetrics()
	payments := NewMerchantPayments(testMerchant(), true)
	payments.SetMetrics(metrics)
	ctx := context.Background()

	_, _ = payments.CreateForm(ctx, mandatoryFields())
	_, _ = payments.CreateForm(ctx, entity.FieldMapOf(FieldAmountToPay, "1"))
	_, _ = payments.GenerateChecksum(ctx, entity.FieldMapOf("Foo", "1"))
	invalid := mandatoryFields()
	invalid.Set("Foo", "1")
	_, _ = payments.GenerateChecksum(ctx, invalid)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.formsCreated.WithLabelValues("test")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.checksumsCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.validationsFailed.WithLabelValues("missing_fields")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.validationsFailed.WithLabelValues("invalid_fields")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var metrics *Metrics
	metrics.formCreated(true)
	metrics.checksumCreated()
	metrics.validationFailed(nil)
}
