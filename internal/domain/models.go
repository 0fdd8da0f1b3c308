package domain

// Station is the booking office that issued the consignment.
type Station struct {
	StationName string `json:"stationName"`
	GST         string `json:"gst"`
}

// LineItem is one consignment row on a booking.
type LineItem struct {
	RefNo     string  `json:"refNo"`
	Insurance float64 `json:"insurance"`
	VPPAmount float64 `json:"vppAmount"`
	ToPay     string  `json:"toPay"`
	Weight    float64 `json:"weight"`
	Amount    float64 `json:"amount"`
}

// Booking is the data a slip is rendered from. Rates are pointers because
// the upstream payload may omit them entirely; resolution happens in the tax
// package, not here.
type Booking struct {
	ID           string     `json:"bookingId"`
	GrandTotal   float64    `json:"grandTotal"`
	CGST         *float64   `json:"cgst"`
	SGST         *float64   `json:"sgst"`
	IGST         *float64   `json:"igst"`
	StartStation *Station   `json:"startStation"`
	FromCity     string     `json:"fromCity"`
	ToCity       string     `json:"toCity"`
	SenderName   string     `json:"senderName"`
	SenderGST    string     `json:"senderGgt"`
	ReceiverName string     `json:"receiverName"`
	ReceiverGST  string     `json:"receiverGgt"`
	BookingDate  string     `json:"bookingDate"`
	Items        []LineItem `json:"items"`
}

// FirstRefNo returns the reference number surfaced at document level.
// Only the first item's ref-no is printed on the slip.
func (b Booking) FirstRefNo() string {
	if len(b.Items) == 0 {
		return ""
	}
	return b.Items[0].RefNo
}

// BinRecord is a soft-deleted booking as shown in the recycle bin.
type BinRecord struct {
	ID             string `json:"id"`
	PickupLocation string `json:"pickupLocation"`
	ReceiverName   string `json:"receiverName"`
	DropLocation   string `json:"dropLocation"`
	Contact        string `json:"contact"`
	Date           string `json:"date"`
}
