package models

import "gorm.io/gorm"

// Payment request statuses
const (
	PaymentStatusPending  = "pending"
	PaymentStatusApproved = "approved"
	PaymentStatusRejected = "rejected"
)

// PaymentRequest is one manual UPI payment submission awaiting human review.
//
// Course carries more than a title: it is the composite string
// "<course> | WA: <whatsapp> | UPI: <upiId> | Name: <upiName>" built by
// utils.BuildCompositeCourse. Every consumer that needs the course title
// back must re-parse it; see utils/entitlement.go.
type PaymentRequest struct {
	gorm.Model
	UserEmail     string `gorm:"index;not null" json:"userEmail"`
	Course        string `gorm:"not null" json:"course"`
	TransactionID string `gorm:"not null" json:"transactionId"`
	Status        string `gorm:"default:'pending'" json:"status"` // pending, approved, rejected
}
