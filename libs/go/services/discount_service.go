package services

import (
	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/cyphera/cyphera-expense/libs/go/money"
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
	"go.uber.org/zap"
)

// DiscountService applies line and document discounts
type DiscountService struct {
	logger *zap.Logger
}

// NewDiscountService creates a new discount service
func NewDiscountService() *DiscountService {
	return &DiscountService{
		logger: logger.L(),
	}
}

// DiscountAmount returns the amount a discount takes off base.
// PERCENTAGE scales base by value/100; anything else is an absolute amount at
// base precision.
func (s *DiscountService) DiscountAmount(base money.Amount, discount business.Discount) money.Amount {
	if discount.Type == business.DiscountTypePercentage {
		return base.Multiply(discount.Value / 100)
	}
	return money.FromFloat(discount.Value, base.Precision())
}

// Apply returns base minus the discount, and the discount amount itself.
// The result is not clamped and can go negative.
func (s *DiscountService) Apply(base money.Amount, discount business.Discount) (money.Amount, money.Amount) {
	discountAmount := s.DiscountAmount(base, discount)
	if discountAmount.IsZero() {
		return base, discountAmount
	}

	discounted := base.Subtract(discountAmount)
	if discounted.IsNegative() {
		s.logger.Debug("Discount exceeds base amount",
			zap.String("base", base.String()),
			zap.String("discount", discountAmount.String()),
			zap.String("type", string(discount.Type)))
	}
	return discounted, discountAmount
}
