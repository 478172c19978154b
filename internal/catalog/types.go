package catalog

import (
	"math"
	"strconv"
)

// Book mirrors a catalog record returned by the bookstore API. StoreID is the
// stable identity assigned by the remote store and is the only valid target
// for update and delete calls; ID is the human-readable catalog code derived
// from the category and is never edited by this client.
type Book struct {
	StoreID     string  `json:"_id"`
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Discount    int     `json:"discount"`
	Author      string  `json:"author"`
	Publisher   string  `json:"publisher"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// FinalPrice returns the discounted price for this book.
func (b Book) FinalPrice() int64 {
	return FinalPrice(b.Price, b.Discount)
}

// HasDiscount reports whether a struck-through original price should be shown.
func (b Book) HasDiscount() bool {
	return b.Discount > 0
}

// FinalPrice computes the price after applying a percentage discount, rounded
// to the nearest currency unit. A non-positive price yields zero.
func FinalPrice(price float64, discount int) int64 {
	if price <= 0 {
		return 0
	}
	final := price - price*float64(discount)/100
	return int64(math.Round(final))
}

// Category codes are fixed by the remote catalog. The code doubles as the
// prefix of server-generated catalog IDs (e.g. TLKH-001).
const (
	CategoryDetective = "TLTT"
	CategoryScience   = "TLKH"
	CategoryHistory   = "TLLS"
)

var categoryLabels = map[string]string{
	CategoryDetective: "Tâm lý - Trinh thám",
	CategoryScience:   "Khoa học",
	CategoryHistory:   "Lịch sử",
}

var categoryCodes = []string{CategoryDetective, CategoryScience, CategoryHistory}

// CategoryCodes returns the known category codes in display order.
func CategoryCodes() []string {
	out := make([]string, len(categoryCodes))
	copy(out, categoryCodes)
	return out
}

// CategoryLabel returns the human label for a category code. Unknown codes are
// returned unchanged so stale catalog data still renders.
func CategoryLabel(code string) string {
	if label, ok := categoryLabels[code]; ok {
		return label
	}
	return code
}

// ValidCategory reports whether code is one of the fixed catalog categories.
func ValidCategory(code string) bool {
	_, ok := categoryLabels[code]
	return ok
}

// BookForm carries the fields submitted with create and update calls. The
// remote API expects a multipart form; ImagePath names a local file to upload
// as the image part and is left empty when the image is unchanged.
type BookForm struct {
	Name      string
	Category  string
	ID        string
	Price     float64
	Discount  int
	Author    string
	Publisher string
	ImagePath string
}

func (f BookForm) fields() [][2]string {
	return [][2]string{
		{"name", f.Name},
		{"category", f.Category},
		{"id", f.ID},
		{"price", strconv.FormatFloat(f.Price, 'f', -1, 64)},
		{"discount", strconv.Itoa(f.Discount)},
		{"author", f.Author},
		{"publisher", f.Publisher},
	}
}

type generateIDResponse struct {
	ID string `json:"id"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
