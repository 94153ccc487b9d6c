package repo

import "gorm.io/gorm"

// itemValues selects an item (alias i) with its four domain values.
const itemValues = `i.*,
	cm.value AS cost_money_value,
	ce.value AS cost_effort_value,
	ct.value AS cost_time_value,
	rp.value AS repeatable_value`

func joinDomainValues(q *gorm.DB) *gorm.DB {
	return q.
		Joins("JOIN domains cm ON cm.domain_id = i.cost_money").
		Joins("JOIN domains ce ON ce.domain_id = i.cost_effort").
		Joins("JOIN domains ct ON ct.domain_id = i.cost_time").
		Joins("JOIN domains rp ON rp.domain_id = i.repeatable")
}
