package auth

// weakPINs is a fixed deny-list of trivially guessable PINs: repeated
// digits, ascending and descending runs, and common keypad patterns.
// Checked independent of PIN length.
var weakPINs = map[string]struct{}{
	"0000": {}, "1111": {}, "2222": {}, "3333": {}, "4444": {},
	"5555": {}, "6666": {}, "7777": {}, "8888": {}, "9999": {},
	"1234": {}, "4321": {}, "0123": {}, "1010": {}, "2580": {},
	"00000": {}, "11111": {}, "12345": {}, "54321": {},
	"000000": {}, "111111": {}, "123456": {}, "654321": {},
}

// IsWeakPIN reports whether pin is on the deny-list.
func IsWeakPIN(pin string) bool {
	_, weak := weakPINs[pin]
	return weak
}
