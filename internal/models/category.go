package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Valid reports whether t is a known category type.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category is process-wide reference data shared by every user.
// Name and type together are unique.
type Category struct {
	Base
	Name      string       `gorm:"size:100;not null;uniqueIndex:idx_categories_name_type" json:"name"`
	Type      CategoryType `gorm:"size:16;not null;uniqueIndex:idx_categories_name_type" json:"type"`
	Icon      string       `gorm:"size:32" json:"icon"`
	Color     string       `gorm:"size:7" json:"color"`
	IsDefault bool         `gorm:"not null;default:false" json:"isDefault"`
}

// DefaultCategories is the catalog seeded on first start.
var DefaultCategories = []Category{
	{Name: "Food", Type: CategoryTypeExpense, Icon: "🍔", Color: "#FF6B6B", IsDefault: true},
	{Name: "Transport", Type: CategoryTypeExpense, Icon: "🚗", Color: "#4ECDC4", IsDefault: true},
	{Name: "Entertainment", Type: CategoryTypeExpense, Icon: "🎮", Color: "#FFE66D", IsDefault: true},
	{Name: "Utilities", Type: CategoryTypeExpense, Icon: "💡", Color: "#95E1D3", IsDefault: true},
	{Name: "Health", Type: CategoryTypeExpense, Icon: "🏥", Color: "#F38181", IsDefault: true},
	{Name: "Education", Type: CategoryTypeExpense, Icon: "📚", Color: "#AA96DA", IsDefault: true},
	{Name: "Other Expenses", Type: CategoryTypeExpense, Icon: "📦", Color: "#FCBAD3", IsDefault: true},
	{Name: "Salary", Type: CategoryTypeIncome, Icon: "💰", Color: "#6BCF7F", IsDefault: true},
	{Name: "Freelance", Type: CategoryTypeIncome, Icon: "💼", Color: "#4D96FF", IsDefault: true},
	{Name: "Investments", Type: CategoryTypeIncome, Icon: "📈", Color: "#FFA726", IsDefault: true},
	{Name: "Other Income", Type: CategoryTypeIncome, Icon: "💵", Color: "#26C6DA", IsDefault: true},
}
