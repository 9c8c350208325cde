package internal

import (
	"context"
	"cpay/config"
	"cpay/entity"
	"cpay/services"
	"fmt"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"strings"
)

// Payments builds CPay payment forms for a single merchant.
// It keeps no per-request state and is safe for concurrent use.
type Payments struct {
	merchant entity.MerchantConfig
	encoder  *ChecksumEncoder
	strict   bool
	logger   services.LogHandler
	metrics  *Metrics
	tracer   trace.Tracer
}

func NewPayments(conf *config.Config) *Payments {
	return NewMerchantPayments(conf.MerchantConfig(), conf.IsStrict())
}

// NewMerchantPayments creates the service for the given merchant. With strict set,
// validation failures are returned as errors; otherwise they are logged and the
// result carries no checksum.
func NewMerchantPayments(merchant entity.MerchantConfig, strict bool) *Payments {
	return &Payments{
		merchant: merchant,
		encoder:  NewChecksumEncoder(merchant.AuthKey, DefaultSchema),
		strict:   strict,
		logger:   newLogger("payments", false, nil, zap.NewNop()),
		tracer:   otel.Tracer("cpay/payments"),
	}
}

func (p *Payments) SetLogger(logger services.LogHandler) {
	p.logger = logger
	mode := config.ValidationStrict
	if !p.strict {
		mode = config.ValidationLenient
	}
	p.logger.Info(fmt.Sprintf("merchant %s; production: %v; validation: %s", secret(p.merchant.PayToMerchant), p.merchant.IsProduction, mode))
}

func (p *Payments) SetMetrics(metrics *Metrics) {
	p.metrics = metrics
}

// BuildRequest appends the merchant fields to the caller fields and trims every value.
// A caller field named like a merchant field is overwritten in place.
func (p *Payments) BuildRequest(request *entity.FieldMap) *entity.FieldMap {
	merged := entity.NewFieldMap()
	for _, field := range request.Fields() {
		merged.Set(field.Name, field.Value)
	}
	merged.Set(FieldPayToMerchant, p.merchant.PayToMerchant)
	merged.Set(FieldMerchantName, p.merchant.MerchantName)
	merged.Set(FieldAmountCurrency, amountCurrency)
	merged.Set(FieldPaymentOkUrl, p.merchant.PaymentOkUrl)
	merged.Set(FieldPaymentFailUrl, p.merchant.PaymentFailUrl)
	return merged.Trimmed()
}

// CreateForm returns the form to submit to CPay for the caller's payment request.
func (p *Payments) CreateForm(ctx context.Context, request *entity.FieldMap) (*entity.Form, error) {
	ctx, span := p.tracer.Start(ctx, "CreateForm")
	defer span.End()

	fields := p.BuildRequest(request)
	result, err := p.GenerateChecksum(ctx, fields)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		return nil, err
	}

	form := NewForm(fields, result.Public(), p.merchant.IsProduction)
	p.metrics.formCreated(p.merchant.IsProduction)
	p.logger.WithRequestId(GetRequestID(ctx)).Debug(fmt.Sprintf("form with %d fields for %s", len(form.Fields), form.Action))
	return form, nil
}

// GenerateChecksum validates and checksums a merged field map.
// In lenient mode a validation failure is logged and nil is returned without error.
func (p *Payments) GenerateChecksum(ctx context.Context, fields *entity.FieldMap) (*entity.ChecksumResult, error) {
	_, span := p.tracer.Start(ctx, "GenerateChecksum", trace.WithAttributes(attribute.Int("cpay.fields", fields.Len())))
	defer span.End()

	logger := p.logger.WithRequestId(GetRequestID(ctx))
	result, err := p.encoder.CreateChecksum(fields)
	if err != nil {
		p.metrics.validationFailed(err)
		logger.Error("payment request", err)
		if p.strict {
			return nil, err
		}
		return nil, nil
	}

	p.metrics.checksumCreated()
	logger.Debug(fmt.Sprintf("checksum string: %s", p.withoutSecret(result.CheckSumString)))
	return result, nil
}

// withoutSecret drops the auth key from the end of a canonical string.
func (p *Payments) withoutSecret(canonical string) string {
	return strings.TrimSuffix(canonical, p.merchant.AuthKey)
}

// secret masks identifiers in log output.
func secret(some string) string {
	if len(some) > 5 {
		return fmt.Sprintf("%s***", some[0:5])
	}
	if some == "" {
		return "?"
	}
	return "***"
}
