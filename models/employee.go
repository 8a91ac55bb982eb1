package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EmployeeRole string

const (
	RoleAdmin    EmployeeRole = "admin"
	RoleEmployee EmployeeRole = "employee"
)

type Employee struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Role      EmployeeRole       `bson:"role" json:"role"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "Open"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusDone       TaskStatus = "Done"
)

type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	AssigneeID  string             `bson:"assigneeId,omitempty" json:"assigneeId,omitempty"`
	Status      TaskStatus         `bson:"status" json:"status"`
	DueDate     time.Time          `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
