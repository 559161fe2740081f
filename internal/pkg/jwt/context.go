package jwt

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

type companyCtxKey struct{}

// WithCompanyID scopes ctx to a company without a token. Background jobs use
// it when they act on behalf of each organisation.
func WithCompanyID(ctx context.Context, companyID string) context.Context {
	return context.WithValue(ctx, companyCtxKey{}, companyID)
}

// CompanyIDFromContext returns the organisation the request acts for, taken
// from an explicit scope or from the verified token's company_id claim.
func CompanyIDFromContext(ctx context.Context) (string, error) {
	if companyID, ok := ctx.Value(companyCtxKey{}).(string); ok && companyID != "" {
		return companyID, nil
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", auth.ErrCompanyIDRequired
	}
	return companyID, nil
}
