package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlexZinkM/gem/internal/model"
)

// Field names one piece of text on the card.
type Field string

const (
	FieldTitle         Field = "title"
	FieldGifted        Field = "gifted"
	FieldRedeemAnyTime Field = "redeem_any_time"
	FieldExample       Field = "example"
	FieldExampleWallet Field = "example_wallet"
	FieldStepInstall   Field = "step_install"
	FieldStepRestore   Field = "step_restore"
	FieldStepScan      Field = "step_scan"
	FieldStepScanBig   Field = "step_scan_big"
	FieldAfterImport   Field = "after_import"
	FieldMessageLabel  Field = "message_label"
	FieldMessage       Field = "message"
	FieldContactLabel  Field = "contact_label"
	FieldContact       Field = "contact"
	FieldWalletHeader  Field = "wallet_header"
	FieldAddressHeader Field = "address_header"
	FieldDate          Field = "date"
	FieldHeight        Field = "height"
	FieldSender        Field = "sender"
	FieldRecipient     Field = "recipient"
)

// Placement puts a field's top-left corner at X,Y with a point size.
type Placement struct {
	Field Field
	X, Y  int
	Size  float64
}

const (
	titleSize  = 60
	headerSize = 30
	bodySize   = 20
)

// Layout is the fixed text layout of the card.
var Layout = []Placement{
	{FieldTitle, 160, 65, titleSize},
	{FieldGifted, 60, 160, bodySize},
	{FieldRedeemAnyTime, 60, 190, bodySize},
	{FieldExample, 60, 220, bodySize},
	{FieldExampleWallet, 60, 250, bodySize},
	{FieldStepInstall, 60, 280, bodySize},
	{FieldStepRestore, 60, 310, bodySize},
	{FieldStepScan, 60, 340, bodySize},
	{FieldStepScanBig, 60, 370, bodySize},
	{FieldAfterImport, 60, 400, bodySize},
	{FieldMessageLabel, 60, 430, bodySize},
	{FieldMessage, 60, 460, bodySize},
	{FieldContactLabel, 60, 490, bodySize},
	{FieldContact, 60, 520, bodySize},
	{FieldWalletHeader, 740, 30, headerSize},
	{FieldAddressHeader, 660, 405, bodySize},
	{FieldDate, 800, 440, bodySize},
	{FieldHeight, 800, 470, bodySize},
	{FieldSender, 800, 500, bodySize},
	{FieldRecipient, 800, 530, bodySize},
}

// Separator line between the information half and the wallet half.
const (
	SeparatorX    = 575
	SeparatorTopY = 0
	SeparatorEndY = 590
)

// QR placements (top-left corners).
const (
	MainQRX    = 615
	MainQRY    = 55
	AddressQRX = 620
	AddressQRY = 425
)

var staticText = map[Field]string{
	FieldTitle:         "MONERO GIFT",
	FieldRedeemAnyTime: "You can redeem this gift at any time into a Monero wallet.",
	FieldExample:       "For example, you can use the instructions below for",
	FieldExampleWallet: "redeeming this gift into the Cake Wallet app:",
	FieldStepInstall:   "1 - Install and open the Cake Wallet app on your phone.",
	FieldStepRestore:   "2 - Tap the 'Restore Wallet' button.",
	FieldStepScan:      "3 - Tap the 'Scan QR Code' button.",
	FieldStepScanBig:   "4 - Scan the big QR code on the side.",
	FieldAfterImport:   "After importing, you can use the XMR in the wallet as you wish.",
	FieldMessageLabel:  "Message: ",
	FieldContactLabel:  "Contact:",
	FieldWalletHeader:  "WALLET",
	FieldAddressHeader: "ADDRESS",
}

// Text returns what field shows for state.
func Text(field Field, state model.GiftCardState) string {
	if s, ok := staticText[field]; ok {
		return s
	}
	switch field {
	case FieldGifted:
		total := state.TotalFiat()
		if code := strings.ToUpper(state.FiatCode); code != "" {
			total += " " + code
		}
		return fmt.Sprintf("Congratulations! You have been gifted %s XMR (~%s)", state.AmountXMR(), total)
	case FieldMessage:
		return "- " + state.Message
	case FieldContact:
		return "- " + state.Contact
	case FieldDate:
		return "Date: " + state.IssueDate.Format("02/01/2006")
	case FieldHeight:
		return "Height: " + strconv.FormatUint(state.BlockHeight, 10)
	case FieldSender:
		return "From " + state.Sender
	case FieldRecipient:
		return "To " + state.Recipient
	}
	return ""
}
