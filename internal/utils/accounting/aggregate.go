package accounting

import (
	"sort"
	"strings"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// latest holds the newest non-blank value seen for one descriptive field.
type latest[T any] struct {
	value T
	at    int64
	set   bool
}

// offer keeps v when it is at least as new as the current value. Entries are offered in
// input order, so on equal timestamps the later position wins.
func (l *latest[T]) offer(v T, at int64) {
	if !l.set || at >= l.at {
		l.value, l.at, l.set = v, at, true
	}
}

// group is the fold state for one entity.
type group struct {
	balance    domain.EntityBalance
	entityType latest[domain.EntityType]
	name       latest[string]
	phone      latest[string]
	address    latest[string]
	baseSalary latest[decimal.Decimal]
}

// Aggregate folds entries into one EntityBalance per non-blank EntityID.
//
// Amount, Advance and WorkingDays are summed over every entry of a group. Each descriptive
// field (type, name, phone, address, base salary) takes the value of the entry with the
// latest CreatedAt among the entries where that field is non-blank, so a newer entry with a
// blank phone never hides an older phone. Only equal timestamps fall back to input position,
// the later entry winning.
func Aggregate(entries []domain.BalanceEntry) map[string]domain.EntityBalance {
	groups := make(map[string]*group)

	for _, e := range entries {
		id := strings.TrimSpace(e.EntityID)
		if id == "" {
			continue
		}

		g, ok := groups[id]
		if !ok {
			g = &group{
				balance: domain.EntityBalance{
					EntityID:         id,
					Balance:          decimal.Zero,
					TotalAdvance:     decimal.Zero,
					TotalWorkingDays: decimal.Zero,
					BaseSalary:       decimal.Zero,
				},
			}
			groups[id] = g
		}

		b := &g.balance
		b.Balance = b.Balance.Add(e.Amount)
		b.TotalAdvance = b.TotalAdvance.Add(e.Advance)
		b.TotalWorkingDays = b.TotalWorkingDays.Add(e.WorkingDays)
		b.EntryCount++

		at := e.CreatedAt.UnixNano()
		if e.EntityType != "" {
			g.entityType.offer(e.EntityType, at)
		}
		if e.DisplayName != "" {
			g.name.offer(e.DisplayName, at)
		}
		if e.Phone != "" {
			g.phone.offer(e.Phone, at)
		}
		if e.Address != "" {
			g.address.offer(e.Address, at)
		}
		if e.BaseSalary != nil {
			g.baseSalary.offer(*e.BaseSalary, at)
		}
	}

	out := make(map[string]domain.EntityBalance, len(groups))
	for id, g := range groups {
		b := g.balance
		b.EntityType = g.entityType.value
		b.DisplayName = g.name.value
		b.Phone = g.phone.value
		b.Address = g.address.value
		if g.baseSalary.set {
			b.BaseSalary = g.baseSalary.value
		}
		out[id] = b
	}
	return out
}

// SortedBalances returns the aggregated balances ordered by display name, then EntityID.
func SortedBalances(balances map[string]domain.EntityBalance) []domain.EntityBalance {
	list := make([]domain.EntityBalance, 0, len(balances))
	for _, b := range balances {
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool {
		ni, nj := strings.ToLower(list[i].DisplayName), strings.ToLower(list[j].DisplayName)
		if ni != nj {
			return ni < nj
		}
		return list[i].EntityID < list[j].EntityID
	})
	return list
}

// TransactionEntry normalises a ledger record. When withAdvances is set (salary flows),
// advance payments to employees and mediators also count towards TotalAdvance.
func TransactionEntry(t domain.TransactionRecord, withAdvances bool) domain.BalanceEntry {
	e := domain.BalanceEntry{
		EntityID:    t.EntityID,
		EntityType:  t.EntityType,
		DisplayName: t.EntityName,
		Phone:       t.Phone,
		Amount:      t.Amount,
		Advance:     decimal.Zero,
		WorkingDays: decimal.Zero,
		CreatedAt:   t.CreatedAt,
	}
	if withAdvances && t.IsAdvance() {
		e.Advance = t.Amount
	}
	return e
}

// SalaryEntry normalises a salary row. Its paid salary moves the balance and its current
// advance and working days feed the salary totals.
func SalaryEntry(s domain.SalaryRecord) domain.BalanceEntry {
	base := s.BaseSalary
	return domain.BalanceEntry{
		EntityID:    s.EmployeeID,
		EntityType:  domain.EntityEmployee,
		DisplayName: s.Name,
		Phone:       s.Phone,
		BaseSalary:  &base,
		Amount:      s.PaidSalary,
		Advance:     s.CurrentAdvance,
		WorkingDays: s.WorkingDays,
		CreatedAt:   s.CreatedAt,
	}
}

// RenewalEntry normalises a renewal. Renewals group by vehicle number, falling back to the
// owner's phone for document renewals without a vehicle.
func RenewalEntry(r domain.Renewal) domain.BalanceEntry {
	id := strings.TrimSpace(r.VehicleNumber)
	if id == "" {
		id = strings.TrimSpace(r.Phone)
	}
	return domain.BalanceEntry{
		EntityID:    id,
		EntityType:  domain.EntityOther,
		DisplayName: r.Name,
		Phone:       r.Phone,
		Amount:      r.Amount,
		Advance:     decimal.Zero,
		WorkingDays: decimal.Zero,
		CreatedAt:   r.CreatedAt,
	}
}
