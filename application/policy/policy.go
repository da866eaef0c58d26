package policy

import "github.com/muhammadheryan/marketplace/model"

// CartView is the priced snapshot of a cart that policies evaluate against.
// Evaluation is pure: no policy ever mutates the cart or touches stock.
type CartView struct {
	Lines       []model.PurchaseLine
	CouponCodes []string
}

func (c *CartView) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

func (c *CartView) TotalPrice() float64 {
	total := 0.0
	for _, line := range c.Lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

func (c *CartView) HasCoupon(code string) bool {
	for _, cc := range c.CouponCodes {
		if cc == code {
			return true
		}
	}
	return false
}

// Evaluator is the single capability the purchase executor consumes: whether the
// cart may be purchased at all, and how much discount applies.
type Evaluator interface {
	Evaluate(cart *CartView) (allowed bool, discount float64)
}

type RuleKind string

const (
	KindPercentage  RuleKind = "PERCENTAGE"
	KindFixed       RuleKind = "FIXED"
	KindCoupon      RuleKind = "COUPON"
	KindConditional RuleKind = "CONDITIONAL"
	KindComposite   RuleKind = "COMPOSITE"
)

type CombineMode string

const (
	CombineSum     CombineMode = "SUM"
	CombineMaximum CombineMode = "MAXIMUM"
)

type ConditionOp string

const (
	OpAnd ConditionOp = "AND"
	OpOr  ConditionOp = "OR"
	OpXor ConditionOp = "XOR"
)

type ConditionKind string

const (
	CondMinItems ConditionKind = "MIN_ITEMS"
	CondMaxItems ConditionKind = "MAX_ITEMS"
	CondMinPrice ConditionKind = "MIN_PRICE"
)

type Condition struct {
	Kind      ConditionKind `json:"kind"`
	Threshold float64       `json:"threshold"`
}

func (c Condition) holds(cart *CartView) bool {
	switch c.Kind {
	case CondMinItems:
		return float64(cart.TotalItems()) >= c.Threshold
	case CondMaxItems:
		return float64(cart.TotalItems()) <= c.Threshold
	case CondMinPrice:
		return cart.TotalPrice() >= c.Threshold
	default:
		return false
	}
}

// Rule is one node of the closed discount tree. Which fields apply depends on
// Kind; unknown kinds evaluate to zero discount.
type Rule struct {
	Kind RuleKind `json:"kind"`

	// KindPercentage
	Percent float64 `json:"percent,omitempty"`

	// KindFixed, KindCoupon
	Amount float64 `json:"amount,omitempty"`

	// KindCoupon
	CouponCode string `json:"coupon_code,omitempty"`

	// KindConditional
	Op         ConditionOp `json:"op,omitempty"`
	Conditions []Condition `json:"conditions,omitempty"`
	Child      *Rule       `json:"child,omitempty"`

	// KindComposite
	Combine  CombineMode `json:"combine,omitempty"`
	Children []*Rule     `json:"children,omitempty"`
}

func (r *Rule) discount(cart *CartView) float64 {
	if r == nil {
		return 0
	}
	switch r.Kind {
	case KindPercentage:
		return cart.TotalPrice() * r.Percent / 100.0
	case KindFixed:
		return r.Amount
	case KindCoupon:
		if cart.HasCoupon(r.CouponCode) {
			return r.Amount
		}
		return 0
	case KindConditional:
		if r.conditionsHold(cart) {
			return r.Child.discount(cart)
		}
		return 0
	case KindComposite:
		total := 0.0
		for _, child := range r.Children {
			d := child.discount(cart)
			if r.Combine == CombineMaximum {
				if d > total {
					total = d
				}
			} else {
				total += d
			}
		}
		return total
	default:
		return 0
	}
}

func (r *Rule) conditionsHold(cart *CartView) bool {
	switch r.Op {
	case OpAnd:
		for _, c := range r.Conditions {
			if !c.holds(cart) {
				return false
			}
		}
		return true
	case OpOr:
		for _, c := range r.Conditions {
			if c.holds(cart) {
				return true
			}
		}
		return false
	case OpXor:
		count := 0
		for _, c := range r.Conditions {
			if c.holds(cart) {
				count++
			}
		}
		return count == 1
	default:
		return false
	}
}

// PurchaseConstraint gates whether checkout is allowed at all.
type PurchaseConstraint struct {
	MinItems int     `json:"min_items,omitempty"`
	MaxItems int     `json:"max_items,omitempty"`
	MinPrice float64 `json:"min_price,omitempty"`
}

func (p *PurchaseConstraint) allowed(cart *CartView) bool {
	if p == nil {
		return true
	}
	items := cart.TotalItems()
	if p.MinItems > 0 && items < p.MinItems {
		return false
	}
	if p.MaxItems > 0 && items > p.MaxItems {
		return false
	}
	if p.MinPrice > 0 && cart.TotalPrice() < p.MinPrice {
		return false
	}
	return true
}

// Policy bundles the store's purchase constraint with its discount tree.
type Policy struct {
	Constraint *PurchaseConstraint `json:"constraint,omitempty"`
	Discount   *Rule               `json:"discount,omitempty"`
}

func (p *Policy) Evaluate(cart *CartView) (bool, float64) {
	if p == nil {
		return true, 0
	}
	if !p.Constraint.allowed(cart) {
		return false, 0
	}
	d := p.Discount.discount(cart)
	if d < 0 {
		d = 0
	}
	return true, d
}

// Permissive is the default policy: everything allowed, no discount.
func Permissive() *Policy {
	return &Policy{}
}
