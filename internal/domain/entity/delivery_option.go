package entity

// DeliveryOption is the fulfilment mode a shop declares at registration.
type DeliveryOption string

// Wire values as the inventory API declares them.
const (
	DeliveryNone       DeliveryOption = "NO_DELIVERY"
	DeliveryInHouse    DeliveryOption = "IN_HOUSE_DRIVER"
	DeliveryThirdParty DeliveryOption = "THIRD_PARTY_PARTNER"
)

// Options lists every delivery option in display order.
func Options() []DeliveryOption {
	return []DeliveryOption{DeliveryNone, DeliveryInHouse, DeliveryThirdParty}
}

// IsValid reports whether the option is one of the declared modes.
func (d DeliveryOption) IsValid() bool {
	switch d {
	case DeliveryNone, DeliveryInHouse, DeliveryThirdParty:
		return true
	default:
		return false
	}
}

// Label returns the human-readable form shown in the console.
func (d DeliveryOption) Label() string {
	switch d {
	case DeliveryInHouse:
		return "In-house Delivery Driver"
	case DeliveryThirdParty:
		return "3rd Party Delivery Partner"
	case DeliveryNone:
		return "No Delivery Service"
	default:
		return string(d)
	}
}
