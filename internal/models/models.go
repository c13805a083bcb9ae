package models

import "time"

// Credential is the read-only identity record in the logins table. The
// backing system of record stores passwords in plain text and login compares
// them by exact equality; that defect is preserved deliberately because
// integrations depend on the exact-match contract.
type Credential struct {
	ID       string  `gorm:"type:uuid;primaryKey" json:"id"`
	User     string  `gorm:"column:user;size:120;not null" json:"user"`
	Password string  `gorm:"size:60;not null" json:"-"`
	Name     string  `gorm:"size:200" json:"name"`
	LastName string  `gorm:"size:200" json:"lastName"`
	Mail     string  `gorm:"size:250" json:"mail"`
	RoleID   *string `gorm:"column:rol_id;type:uuid" json:"-"`
	Role     string  `gorm:"column:rol;size:150" json:"rol"`
}

func (Credential) TableName() string { return "logins" }

type TechnicianType struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Code string `gorm:"size:100" json:"code"`
	Name string `gorm:"size:100" json:"name"`
}

type Technician struct {
	ID               string `gorm:"type:uuid;primaryKey" json:"id"`
	Code             string `gorm:"size:100" json:"code"`
	Name             string `gorm:"size:200" json:"name"`
	TechnicianTypeID string `gorm:"type:uuid" json:"technician_type_id"`
}

type ProductType struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Code string `gorm:"size:100" json:"code"`
	Name string `gorm:"size:100" json:"name"`
}

// Segment links a product to its product type through the segment1 column.
// Only the columns the product join needs are mapped.
type Segment struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	Segment1ID string `gorm:"column:segment1_id;type:uuid" json:"segment1_id"`
	Name1      string `gorm:"size:100" json:"name1"`
}

// Product rows with active_status != 0 are soft-deleted upstream and never
// served.
type Product struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	Code         string `gorm:"size:100" json:"code"`
	Description  string `gorm:"size:200" json:"description"`
	SegmentID    string `gorm:"type:uuid" json:"segment_id"`
	ActiveStatus int    `gorm:"not null;default:0" json:"active_status"`
}

type Province struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"size:100" json:"name"`
}

// Category is the problem grouping (rubro in the upstream schema). A problem
// may have none.
type Category struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"size:100" json:"name"`
}

type Problem struct {
	ID         string  `gorm:"type:uuid;primaryKey" json:"id"`
	Code       string  `gorm:"size:100" json:"code"`
	Name       string  `gorm:"size:200" json:"name"`
	CategoryID *string `gorm:"type:uuid" json:"category_id,omitempty"`
}

// Label maps a printed serial-number label to a product. Serials are unique
// per canonical product-type code (COCINA, TERMOTANQUE).
type Label struct {
	Serial          int    `gorm:"primaryKey;autoIncrement:false" json:"serial"`
	ProductTypeCode string `gorm:"primaryKey;size:20" json:"product_type_code"`
	ProductID       string `gorm:"type:uuid" json:"product_id"`
}

// Complaint is the aggregate root. Items live in their own table keyed by a
// string copy of the generated root id, so the slice is loaded by hand and
// never mapped as an association.
type Complaint struct {
	ID               int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName         string    `gorm:"size:200" json:"full_name"`
	DocumentID       string    `gorm:"size:20" json:"document_id"`
	Address          string    `gorm:"size:200" json:"address"`
	BetweenStreets   string    `gorm:"size:200" json:"between_streets"`
	LocalityID       string    `gorm:"size:60" json:"locality_id"`
	PostalCode       string    `gorm:"size:20" json:"postal_code"`
	Mail             string    `gorm:"size:250" json:"mail"`
	Phones           string    `gorm:"size:100" json:"phones"`
	Phone2           string    `gorm:"size:100" json:"phone2"`
	TechnicianTypeID string    `gorm:"size:60" json:"technician_type_id"`
	TechnicianID     string    `gorm:"size:60" json:"technician_id"`
	ProductTypeID    string    `gorm:"size:60" json:"product_type_id"`
	ProductID        string    `gorm:"size:60" json:"product_id"`
	UserCreated      string    `gorm:"size:120" json:"user_created"`
	PurchaseDate     time.Time `json:"purchase_date"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	PageEnteredAt    time.Time `gorm:"column:fecha_hora_ingreso_pagina" json:"fecha_hora_ingreso_pagina"`

	Items []ComplaintItem `gorm:"-" json:"items"`
}

// ComplaintItem references its parent through a string column. The value is
// stamped from the root's generated integer id after the root insert, inside
// the same transaction.
type ComplaintItem struct {
	ID           int    `gorm:"primaryKey;autoIncrement" json:"id"`
	ComplaintID  string `gorm:"size:20;index" json:"complaint_id"`
	ProblemID    string `gorm:"size:60" json:"problem_id"`
	SerialNumber string `gorm:"size:60" json:"serial_number"`
	Description  string `gorm:"size:200" json:"description"`
	Quantity     int    `gorm:"not null;default:1;check:quantity >= 0" json:"quantity"`
}
