package model

// DefaultCategories returns the category set seeded when the database is
// first created: nine expense and five income categories. Ids are
// assigned by the store on insert.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Ăn uống", Type: TypeExpense, Icon: "🍜", Color: "#FF5722", IsDefault: true},
		{Name: "Mua sắm", Type: TypeExpense, Icon: "🛒", Color: "#E91E63", IsDefault: true},
		{Name: "Hóa đơn", Type: TypeExpense, Icon: "💡", Color: "#9C27B0", IsDefault: true},
		{Name: "Đi lại", Type: TypeExpense, Icon: "🚗", Color: "#3F51B5", IsDefault: true},
		{Name: "Giải trí", Type: TypeExpense, Icon: "🎮", Color: "#2196F3", IsDefault: true},
		{Name: "Y tế", Type: TypeExpense, Icon: "💊", Color: "#00BCD4", IsDefault: true},
		{Name: "Giáo dục", Type: TypeExpense, Icon: "📚", Color: "#009688", IsDefault: true},
		{Name: "Quần áo", Type: TypeExpense, Icon: "👕", Color: "#795548", IsDefault: true},
		{Name: "Khác", Type: TypeExpense, Icon: "📦", Color: "#607D8B", IsDefault: true},

		{Name: "Lương", Type: TypeIncome, Icon: "💰", Color: "#4CAF50", IsDefault: true},
		{Name: "Thưởng", Type: TypeIncome, Icon: "🎁", Color: "#8BC34A", IsDefault: true},
		{Name: "Đầu tư", Type: TypeIncome, Icon: "📈", Color: "#CDDC39", IsDefault: true},
		{Name: "Bán hàng", Type: TypeIncome, Icon: "🏪", Color: "#FFC107", IsDefault: true},
		{Name: "Thu nhập khác", Type: TypeIncome, Icon: "💵", Color: "#FF9800", IsDefault: true},
	}
}
