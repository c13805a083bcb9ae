package models

import "time"

// DTOs are mapped by the explicit functions below. The field sets are small
// and static; a reflective mapper would hide more than it saves.

type UserLoginDTO struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

type UserInfoDTO struct {
	ID       string `json:"id"`
	User     string `json:"user"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Mail     string `json:"mail"`
	Role     string `json:"rol"`
}

func UserInfoFromCredential(c Credential) UserInfoDTO {
	return UserInfoDTO{
		ID:       c.ID,
		User:     c.User,
		Name:     c.Name,
		LastName: c.LastName,
		Mail:     c.Mail,
		Role:     c.Role,
	}
}

// ProductDTO is the joined read shape: product columns plus the product type
// reached through the segment table.
type ProductDTO struct {
	ID          string      `json:"id"`
	Code        string      `json:"code"`
	Description string      `json:"description"`
	ProductType ProductType `json:"product_type"`
}

type ProblemDTO struct {
	ID       string    `json:"id"`
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	Category *Category `json:"category,omitempty"`
}

// LabelDTO is the serial lookup response: the label row with its product and
// product type resolved.
type LabelDTO struct {
	Serial  int        `json:"serial"`
	Product ProductDTO `json:"product"`
}

type LabelLookupDTO struct {
	Serial      int `json:"serial"`
	ProductType struct {
		Code string `json:"code"`
	} `json:"product_type"`
}

// ComplaintDTO is the reduced write shape. Server-assigned fields (id,
// timestamps) are absent; they are stamped on create and preserved on update.
type ComplaintDTO struct {
	FullName         string             `json:"full_name"`
	DocumentID       string             `json:"document_id"`
	Address          string             `json:"address"`
	BetweenStreets   string             `json:"between_streets"`
	LocalityID       string             `json:"locality_id"`
	PostalCode       string             `json:"postal_code"`
	Mail             string             `json:"mail"`
	Phones           string             `json:"phones"`
	Phone2           string             `json:"phone2"`
	TechnicianTypeID string             `json:"technician_type_id"`
	TechnicianID     string             `json:"technician_id"`
	ProductTypeID    string             `json:"product_type_id"`
	ProductID        string             `json:"product_id"`
	UserCreated      string             `json:"user_created"`
	PurchaseDate     time.Time          `json:"purchase_date"`
	Notes            string             `json:"notes"`
	Items            []ComplaintItemDTO `json:"items"`
}

type ComplaintItemDTO struct {
	ProblemID    string `json:"problem_id"`
	SerialNumber string `json:"serial_number"`
	Description  string `json:"description"`
	Quantity     int    `json:"quantity"`
}

// ComplaintFromDTO builds a new aggregate. Timestamps and ids are left zero;
// the store stamps them.
func ComplaintFromDTO(d ComplaintDTO) Complaint {
	c := Complaint{
		FullName:         d.FullName,
		DocumentID:       d.DocumentID,
		Address:          d.Address,
		BetweenStreets:   d.BetweenStreets,
		LocalityID:       d.LocalityID,
		PostalCode:       d.PostalCode,
		Mail:             d.Mail,
		Phones:           d.Phones,
		Phone2:           d.Phone2,
		TechnicianTypeID: d.TechnicianTypeID,
		TechnicianID:     d.TechnicianID,
		ProductTypeID:    d.ProductTypeID,
		ProductID:        d.ProductID,
		UserCreated:      d.UserCreated,
		PurchaseDate:     d.PurchaseDate,
		Notes:            d.Notes,
	}
	for _, it := range d.Items {
		c.Items = append(c.Items, ComplaintItemFromDTO(it))
	}
	return c
}

func ComplaintItemFromDTO(d ComplaintItemDTO) ComplaintItem {
	return ComplaintItem{
		ProblemID:    d.ProblemID,
		SerialNumber: d.SerialNumber,
		Description:  d.Description,
		Quantity:     d.Quantity,
	}
}

// ApplyComplaintDTO copies the writable fields onto an existing root, keeping
// id and server-assigned timestamps. Items are not touched here; update is a
// root-only operation.
func ApplyComplaintDTO(d ComplaintDTO, c *Complaint) {
	c.FullName = d.FullName
	c.DocumentID = d.DocumentID
	c.Address = d.Address
	c.BetweenStreets = d.BetweenStreets
	c.LocalityID = d.LocalityID
	c.PostalCode = d.PostalCode
	c.Mail = d.Mail
	c.Phones = d.Phones
	c.Phone2 = d.Phone2
	c.TechnicianTypeID = d.TechnicianTypeID
	c.TechnicianID = d.TechnicianID
	c.ProductTypeID = d.ProductTypeID
	c.ProductID = d.ProductID
	c.UserCreated = d.UserCreated
	c.PurchaseDate = d.PurchaseDate
	c.Notes = d.Notes
}
