package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/pkg/orm"
)

// ExportService renders admin CSV exports.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// Export returns the CSV body and suggested filename for the given type.
// Supported types: orders, users, gemstones. Anything else is
// ErrUnknownExport.
func (s *ExportService) Export(exportType string) ([]byte, string, error) {
	switch exportType {
	case "orders":
		body, err := s.orders()
		return body, "orders.csv", err
	case "users":
		body, err := s.users()
		return body, "users.csv", err
	case "gemstones":
		body, err := s.gemstones()
		return body, "gemstones.csv", err
	default:
		return nil, "", ErrUnknownExport
	}
}

func (s *ExportService) orders() ([]byte, error) {
	var orders []models.Order
	if err := orm.DB().Model(&models.Order{}).
		Preload("User").
		Order("id asc").
		Get(&orders); err != nil {
		return nil, fmt.Errorf("export: load orders: %w", err)
	}

	rows := [][]string{{"id", "order_number", "customer", "email", "total", "status", "payment_method", "created_at"}}
	for _, o := range orders {
		name, email := "", ""
		if o.User != nil {
			name, email = o.User.Name, o.User.Email
		}
		rows = append(rows, []string{
			strconv.FormatUint(uint64(o.ID), 10),
			o.OrderNumber,
			name,
			email,
			fmt.Sprintf("%.2f", o.Total),
			o.Status,
			o.PaymentMethod,
			o.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return writeCSV(rows)
}

func (s *ExportService) users() ([]byte, error) {
	var users []models.User
	if err := orm.DB().Model(&models.User{}).Order("id asc").Get(&users); err != nil {
		return nil, fmt.Errorf("export: load users: %w", err)
	}

	rows := [][]string{{"id", "name", "email", "role", "created_at"}}
	for _, u := range users {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(u.ID), 10),
			u.Name,
			u.Email,
			u.Role,
			u.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return writeCSV(rows)
}

func (s *ExportService) gemstones() ([]byte, error) {
	var gems []models.Gemstone
	if err := orm.DB().Model(&models.Gemstone{}).
		Preload("Category").
		Order("id asc").
		Get(&gems); err != nil {
		return nil, fmt.Errorf("export: load gemstones: %w", err)
	}

	rows := [][]string{{"id", "name", "type", "category", "price", "stock", "featured", "active"}}
	for _, g := range gems {
		category := ""
		if g.Category != nil {
			category = g.Category.Name
		}
		rows = append(rows, []string{
			strconv.FormatUint(uint64(g.ID), 10),
			g.Name,
			g.Type,
			category,
			fmt.Sprintf("%.2f", g.Price),
			strconv.Itoa(g.Stock),
			strconv.FormatBool(g.Featured),
			strconv.FormatBool(g.Active),
		})
	}
	return writeCSV(rows)
}

func writeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("export: write csv: %w", err)
	}
	return buf.Bytes(), nil
}
