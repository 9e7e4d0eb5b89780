// Package models provides the data structures used throughout the application.
package models

// Category represents a transaction category
type Category struct {
	Name        string
	Description string
}

// CategoryConfig represents a category configuration in the YAML file.
// Keywords are matched as lowercase substrings, in list order.
type CategoryConfig struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// KeywordsConfig represents the structure of the keywords YAML file.
// Category order is significant: the first category with a matching keyword wins.
type KeywordsConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
	Income     []string         `yaml:"income"`
	Fillers    []string         `yaml:"fillers"`
}

// StoredCategory is a persisted category as known by the caller's storage layer.
type StoredCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultCategories returns the built-in category keyword table in match order.
func DefaultCategories() []CategoryConfig {
	return []CategoryConfig{
		{Name: CategoryGroceries, Keywords: []string{"grocery", "groceries", "vegetable", "kirana", "supermarket"}},
		{Name: CategoryTransport, Keywords: []string{"uber", "ola", "taxi", "cab", "bus", "train", "fuel", "petrol", "travel"}},
		{Name: CategoryDining, Keywords: []string{"dinner", "lunch", "restaurant", "cafe", "food", "coffee"}},
		{Name: CategoryRent, Keywords: []string{"rent", "apartment", "house rent"}},
		{Name: CategorySalary, Keywords: []string{"salary", "pay"}},
		{Name: CategoryShopping, Keywords: []string{"amazon", "flipkart", "shopping", "clothes", "shirt", "shoe"}},
		{Name: CategoryUtilities, Keywords: []string{"electricity", "water", "internet", "wifi", "bill"}},
	}
}

// DefaultIncomeKeywords returns the keywords that flip a transcript to income.
func DefaultIncomeKeywords() []string {
	return []string{"received", "got", "salary", "income", "credited"}
}

// DefaultFillers returns the verbs stripped from descriptions.
func DefaultFillers() []string {
	return []string{"add", "spent", "spend", "log", "pay", "paid", "purchase", "bought"}
}

// DefaultKeywordsConfig bundles the built-in tables.
func DefaultKeywordsConfig() KeywordsConfig {
	return KeywordsConfig{
		Categories: DefaultCategories(),
		Income:     DefaultIncomeKeywords(),
		Fillers:    DefaultFillers(),
	}
}
