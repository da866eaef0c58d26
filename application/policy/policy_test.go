package policy_test

import (
	"testing"

	"github.com/muhammadheryan/marketplace/application/policy"
	"github.com/muhammadheryan/marketplace/model"
)

func cartOf(quantity int, unitPrice float64, coupons ...string) *policy.CartView {
	return &policy.CartView{
		Lines: []model.PurchaseLine{
			{StoreID: "s1", ListingID: "l1", Quantity: quantity, UnitPrice: unitPrice},
		},
		CouponCodes: coupons,
	}
}

func TestPolicy_Evaluate(t *testing.T) {
	tests := []struct {
		name         string
		policy       *policy.Policy
		cart         *policy.CartView
		wantAllowed  bool
		wantDiscount float64
	}{
		{
			name:         "nil policy allows everything",
			policy:       nil,
			cart:         cartOf(2, 50),
			wantAllowed:  true,
			wantDiscount: 0,
		},
		{
			name: "constraint blocks below min items",
			policy: &policy.Policy{
				Constraint: &policy.PurchaseConstraint{MinItems: 3},
			},
			cart:        cartOf(2, 50),
			wantAllowed: false,
		},
		{
			name: "percentage discount",
			policy: &policy.Policy{
				Discount: &policy.Rule{Kind: policy.KindPercentage, Percent: 10},
			},
			cart:         cartOf(2, 50),
			wantAllowed:  true,
			wantDiscount: 10,
		},
		{
			name: "coupon only applies when present",
			policy: &policy.Policy{
				Discount: &policy.Rule{Kind: policy.KindCoupon, CouponCode: "SAVE5", Amount: 5},
			},
			cart:         cartOf(2, 50),
			wantAllowed:  true,
			wantDiscount: 0,
		},
		{
			name: "coupon applied",
			policy: &policy.Policy{
				Discount: &policy.Rule{Kind: policy.KindCoupon, CouponCode: "SAVE5", Amount: 5},
			},
			cart:         cartOf(2, 50, "SAVE5"),
			wantAllowed:  true,
			wantDiscount: 5,
		},
		{
			name: "composite sum",
			policy: &policy.Policy{
				Discount: &policy.Rule{
					Kind:    policy.KindComposite,
					Combine: policy.CombineSum,
					Children: []*policy.Rule{
						{Kind: policy.KindPercentage, Percent: 10},
						{Kind: policy.KindFixed, Amount: 3},
					},
				},
			},
			cart:         cartOf(2, 50),
			wantAllowed:  true,
			wantDiscount: 13,
		},
		{
			name: "composite maximum",
			policy: &policy.Policy{
				Discount: &policy.Rule{
					Kind:    policy.KindComposite,
					Combine: policy.CombineMaximum,
					Children: []*policy.Rule{
						{Kind: policy.KindPercentage, Percent: 10},
						{Kind: policy.KindFixed, Amount: 3},
					},
				},
			},
			cart:         cartOf(2, 50),
			wantAllowed:  true,
			wantDiscount: 10,
		},
		{
			name: "conditional AND holds",
			policy: &policy.Policy{
				Discount: &policy.Rule{
					Kind: policy.KindConditional,
					Op:   policy.OpAnd,
					Conditions: []policy.Condition{
						{Kind: policy.CondMinItems, Threshold: 2},
						{Kind: policy.CondMinPrice, Threshold: 100},
					},
					Child: &policy.Rule{Kind: policy.KindFixed, Amount: 7},
				},
			},
			cart:         cartOf(2, 50),
			wantAllowed:  true,
			wantDiscount: 7,
		},
		{
			name: "conditional XOR needs exactly one",
			policy: &policy.Policy{
				Discount: &policy.Rule{
					Kind: policy.KindConditional,
					Op:   policy.OpXor,
					Conditions: []policy.Condition{
						{Kind: policy.CondMinItems, Threshold: 2},
						{Kind: policy.CondMinPrice, Threshold: 100},
					},
					Child: &policy.Rule{Kind: policy.KindFixed, Amount: 7},
				},
			},
			cart:         cartOf(2, 50),
			wantAllowed:  true,
			wantDiscount: 0,
		},
		{
			name: "conditional OR with one holding",
			policy: &policy.Policy{
				Discount: &policy.Rule{
					Kind: policy.KindConditional,
					Op:   policy.OpOr,
					Conditions: []policy.Condition{
						{Kind: policy.CondMinItems, Threshold: 5},
						{Kind: policy.CondMinPrice, Threshold: 100},
					},
					Child: &policy.Rule{Kind: policy.KindFixed, Amount: 7},
				},
			},
			cart:         cartOf(2, 50),
			wantAllowed:  true,
			wantDiscount: 7,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			allowed, discount := tt.policy.Evaluate(tt.cart)
			if allowed != tt.wantAllowed {
				t.Fatalf("allowed = %v, want %v", allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed {
				return
			}
			if discount != tt.wantDiscount {
				t.Fatalf("discount = %v, want %v", discount, tt.wantDiscount)
			}
		})
	}
}
