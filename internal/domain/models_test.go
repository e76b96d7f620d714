package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPromotionPatch_Apply(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	cur := &Promotion{
		ID: 3, Code: "SPRING10", Description: "Spring sale", DiscountType: DiscountPercent,
		DiscountValue: decimal.NewFromInt(10), MaxUses: 100, UsedCount: 12,
		StartsAt: start, ExpiresAt: start.Add(30 * 24 * time.Hour),
	}

	t.Run("Empty patch keeps everything", func(t *testing.T) {
		p := PromotionPatch{}
		assert.True(t, p.Empty())
		in := p.Apply(cur)
		assert.Equal(t, "SPRING10", in.Code)
		assert.Equal(t, 100, in.MaxUses)
		assert.Equal(t, cur.ExpiresAt, in.ExpiresAt)
	})

	t.Run("Set fields override", func(t *testing.T) {
		value := decimal.NewFromInt(500)
		fixed := DiscountFixed
		unlimited := 0
		p := PromotionPatch{DiscountType: &fixed, DiscountValue: &value, MaxUses: &unlimited}
		assert.False(t, p.Empty())

		in := p.Apply(cur)
		assert.Equal(t, DiscountFixed, in.DiscountType)
		assert.True(t, value.Equal(in.DiscountValue))
		assert.Equal(t, 0, in.MaxUses)
		assert.Equal(t, "Spring sale", in.Description)
		assert.Equal(t, start, in.StartsAt)
	})
}
