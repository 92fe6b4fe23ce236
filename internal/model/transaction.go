package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction says whether money entered or left the account.
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirectionIncoming || d == DirectionOutgoing
}

// ParseDirection accepts the stored names plus the credit/debit aliases
// used on bank statements.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "incoming", "credit", "in":
		return DirectionIncoming, true
	case "outgoing", "debit", "out":
		return DirectionOutgoing, true
	}
	return "", false
}

// Bank is the canonical name of the issuing institution.
type Bank string

const (
	BankHDFC     Bank = "HDFC Bank"
	BankICICI    Bank = "ICICI Bank"
	BankSBI      Bank = "State Bank of India"
	BankAxis     Bank = "Axis Bank"
	BankKotak    Bank = "Kotak Bank"
	BankPNB      Bank = "Punjab National Bank"
	BankYes      Bank = "Yes Bank"
	BankPaytm    Bank = "Paytm Bank"
	BankPhonePe  Bank = "PhonePe"
	BankBaroda   Bank = "Bank of Baroda"
	BankCanara   Bank = "Canara Bank"
	BankUnion    Bank = "Union Bank"
	BankIndusInd Bank = "IndusInd Bank"
	BankIDFC     Bank = "IDFC First Bank"
	BankFederal  Bank = "Federal Bank"
	BankOther    Bank = "Other"
)

// Banks lists every known bank, BankOther last.
var Banks = []Bank{
	BankHDFC, BankICICI, BankSBI, BankAxis, BankKotak, BankPNB, BankYes, BankPaytm,
	BankPhonePe, BankBaroda, BankCanara, BankUnion, BankIndusInd, BankIDFC, BankFederal,
	BankOther,
}

// Valid reports whether b is one of Banks.
func (b Bank) Valid() bool {
	for _, known := range Banks {
		if b == known {
			return true
		}
	}
	return false
}

// PaymentMode is the payment rail or channel a transaction went through.
type PaymentMode string

const (
	PaymentModeUPI        PaymentMode = "UPI"
	PaymentModeNEFT       PaymentMode = "NEFT"
	PaymentModeIMPS       PaymentMode = "IMPS"
	PaymentModeRTGS       PaymentMode = "RTGS"
	PaymentModeATM        PaymentMode = "ATM"
	PaymentModeCardSwipe  PaymentMode = "Card Swipe"
	PaymentModeNetBanking PaymentMode = "Net Banking"
	PaymentModeEMI        PaymentMode = "EMI"
	PaymentModeOther      PaymentMode = "Other"
)

// PaymentModes lists every payment mode, PaymentModeOther last.
var PaymentModes = []PaymentMode{
	PaymentModeUPI, PaymentModeNEFT, PaymentModeIMPS, PaymentModeRTGS, PaymentModeATM,
	PaymentModeCardSwipe, PaymentModeNetBanking, PaymentModeEMI, PaymentModeOther,
}

// Valid reports whether m is one of PaymentModes.
func (m PaymentMode) Valid() bool {
	for _, known := range PaymentModes {
		if m == known {
			return true
		}
	}
	return false
}

// ParsedTransaction is the result of extracting a bank SMS.
// It carries no identity; see Record for the stored form.
type ParsedTransaction struct {
	Direction   Direction
	Amount      decimal.Decimal // always positive
	Bank        Bank
	Merchant    string
	PaymentMode PaymentMode
	Date        time.Time // midnight UTC
	Category    Category
}
