package models

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"uniqueIndex;not null"     json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
}

// Setting is a key/value row; the "is_initialized" key doubles as the
// one-time-setup flag.
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `gorm:"not null"   json:"value"`
}

type Appointment struct {
	ID                 uint   `gorm:"primaryKey"           json:"id"`
	Reference          string `gorm:"uniqueIndex;not null" json:"reference"`
	CustomerName       string `gorm:"not null"             json:"customer_name"`
	PhoneNumber        string `gorm:"not null"             json:"phone_number"`
	Email              string `json:"email"`
	DeviceModel        string `gorm:"not null"             json:"device_model"`
	ProblemDescription string `json:"problem_description"`
	BookingTime        int64  `gorm:"index;not null"       json:"booking_time"`
	Status             string `gorm:"not null;default:pending" json:"status"`
	CreatedAt          int64  `gorm:"autoCreateTime"       json:"created_at"`
}

type ContactMessage struct {
	ID        uint   `gorm:"primaryKey"     json:"id"`
	Name      string `gorm:"not null"       json:"name"`
	Email     string `gorm:"not null"       json:"email"`
	Message   string `gorm:"not null"       json:"message"`
	IsRead    bool   `gorm:"default:false"  json:"is_read"`
	CreatedAt int64  `gorm:"autoCreateTime" json:"created_at"`
}

type Service struct {
	ID            uint   `gorm:"primaryKey"     json:"id"`
	Category      string `gorm:"index;not null" json:"category"`
	IconName      string `json:"icon_name"`
	TitleIt       string `gorm:"not null"       json:"title_it"`
	TitleCn       string `gorm:"not null"       json:"title_cn"`
	DescriptionIt string `json:"description_it"`
	DescriptionCn string `json:"description_cn"`
	PriceDisplay  string `json:"price_display"`
	SortOrder     int    `gorm:"default:0"      json:"sort_order"`
	IsActive      bool   `gorm:"default:true"   json:"is_active"`
}

type ServiceCategory struct {
	ID        uint   `gorm:"primaryKey"           json:"id"`
	NameIt    string `gorm:"not null"             json:"name_it"`
	NameCn    string `gorm:"not null"             json:"name_cn"`
	Slug      string `gorm:"uniqueIndex;not null" json:"slug"`
	SortOrder int    `gorm:"default:0"            json:"sort_order"`
}

type Carrier struct {
	ID          uint   `gorm:"primaryKey"   json:"id"`
	Name        string `gorm:"not null"     json:"name"`
	TrackingURL string `gorm:"not null"     json:"tracking_url"`
	SortOrder   int    `gorm:"default:0"    json:"sort_order"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

// BusinessHour holds one weekday's schedule. Times are "HH:MM" strings in
// the shop's local timezone; empty means the half-day is not used.
type BusinessHour struct {
	ID             uint   `gorm:"primaryKey"           json:"id"`
	DayOfWeek      int    `gorm:"uniqueIndex;not null" json:"day_of_week"`
	IsOpen         bool   `gorm:"default:false"        json:"is_open"`
	MorningOpen    string `json:"morning_open"`
	MorningClose   string `json:"morning_close"`
	AfternoonOpen  string `json:"afternoon_open"`
	AfternoonClose string `json:"afternoon_close"`
}

// Holiday closes the shop for an inclusive date range ("YYYY-MM-DD").
type Holiday struct {
	ID        uint   `gorm:"primaryKey"   json:"id"`
	Name      string `gorm:"not null"     json:"name"`
	StartDate string `gorm:"not null"     json:"start_date"`
	EndDate   string `gorm:"not null"     json:"end_date"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`
}
