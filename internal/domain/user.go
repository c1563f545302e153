package domain

// ServiceType is the kind of business a provider runs
type ServiceType string

const (
	ServiceHotel         ServiceType = "hotel"
	ServiceTourGuide     ServiceType = "tour-guide"
	ServiceTravelService ServiceType = "travel-service"
	ServiceGeneral       ServiceType = "general"
)

// ServiceTypes lists every service type in signup order
var ServiceTypes = []ServiceType{
	ServiceHotel,
	ServiceTourGuide,
	ServiceTravelService,
	ServiceGeneral,
}

// Label returns the human-readable name of the service type
func (s ServiceType) Label() string {
	switch s {
	case ServiceHotel:
		return "Hotel Provider"
	case ServiceTourGuide:
		return "Tour Guide"
	case ServiceTravelService:
		return "Travel Service"
	case ServiceGeneral:
		return "General Service Provider"
	default:
		return "Service Provider"
	}
}

// Valid reports whether s is a known service type
func (s ServiceType) Valid() bool {
	for _, known := range ServiceTypes {
		if s == known {
			return true
		}
	}
	return false
}

// User is the signed-in service provider
type User struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	ServiceType  ServiceType `json:"serviceType"`
	BusinessName string      `json:"businessName"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Rating       float64     `json:"rating"`
	TotalReviews int         `json:"totalReviews"`
	JoinedDate   string      `json:"joinedDate"`
}

// ProfileUpdate holds the editable profile fields. Nil fields are unchanged.
type ProfileUpdate struct {
	Name         *string
	BusinessName *string
	Phone        *string
	Address      *string
	ServiceType  *ServiceType
}

// Apply returns a copy of u with the non-nil fields of p applied
func (p ProfileUpdate) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.BusinessName != nil {
		u.BusinessName = *p.BusinessName
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.ServiceType != nil {
		u.ServiceType = *p.ServiceType
	}
	return u
}
