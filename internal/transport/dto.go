package transport

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type UserData struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type LoginData struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         UserData `json:"user"`
	ExpiresIn    int      `json:"expiresIn"`
}

type RefreshData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
}

type VerifyData struct {
	User      UserData `json:"user"`
	ExpiresAt int64    `json:"expiresAt"`
}

type CreateBookingRequest struct {
	CustomerName       string `json:"customerName"`
	PhoneNumber        string `json:"phoneNumber"`
	Email              string `json:"email"`
	DeviceModel        string `json:"deviceModel"`
	ProblemDescription string `json:"problemDescription"`
	BookingTime        int64  `json:"bookingTime"`
	CaptchaToken       string `json:"captchaToken"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

type CreateContactRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Message      string `json:"message"`
	CaptchaToken string `json:"captchaToken"`
}

type CreateServiceRequest struct {
	Category      string `json:"category"`
	IconName      string `json:"iconName"`
	TitleIt       string `json:"titleIt"`
	TitleCn       string `json:"titleCn"`
	DescriptionIt string `json:"descriptionIt"`
	DescriptionCn string `json:"descriptionCn"`
	PriceDisplay  string `json:"priceDisplay"`
	SortOrder     int    `json:"sortOrder"`
	IsActive      *bool  `json:"isActive"`
}

type PatchServiceRequest struct {
	Category      *string `json:"category"`
	IconName      *string `json:"iconName"`
	TitleIt       *string `json:"titleIt"`
	TitleCn       *string `json:"titleCn"`
	DescriptionIt *string `json:"descriptionIt"`
	DescriptionCn *string `json:"descriptionCn"`
	PriceDisplay  *string `json:"priceDisplay"`
	SortOrder     *int    `json:"sortOrder"`
	IsActive      *bool   `json:"isActive"`
}

type CreateCategoryRequest struct {
	NameIt    string `json:"nameIt"`
	NameCn    string `json:"nameCn"`
	Slug      string `json:"slug"`
	SortOrder int    `json:"sortOrder"`
}

type CreateCarrierRequest struct {
	Name        string `json:"name"`
	TrackingURL string `json:"trackingUrl"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    *bool  `json:"isActive"`
}

type PatchCarrierRequest struct {
	Name        *string `json:"name"`
	TrackingURL *string `json:"trackingUrl"`
	SortOrder   *int    `json:"sortOrder"`
	IsActive    *bool   `json:"isActive"`
}

type UpsertBusinessHourRequest struct {
	IsOpen         bool   `json:"isOpen"`
	MorningOpen    string `json:"morningOpen"`
	MorningClose   string `json:"morningClose"`
	AfternoonOpen  string `json:"afternoonOpen"`
	AfternoonClose string `json:"afternoonClose"`
}

type CreateHolidayRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	IsActive  *bool  `json:"isActive"`
}

type PatchHolidayRequest struct {
	Name      *string `json:"name"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	IsActive  *bool   `json:"isActive"`
}

type UpdateSettingRequest struct {
	Value *string `json:"value"`
}
