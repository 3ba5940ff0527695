package project

import "time"

type Project struct {
	Id                 int
	CustomerId         int
	CustomerName       string
	ProjectNumber      string
	Name               string
	IsActive           bool
	ExcludeFromInvoice bool
	CreatedDate        time.Time
}
