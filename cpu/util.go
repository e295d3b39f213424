package cpu

import "fmt"

// fmtByte renders a short "REG:XX" outcome summary for a LogLine.
func fmtByte(reg string, v byte) string {
	return fmt.Sprintf("%s:%02X", reg, v)
}

// fmtWord renders a short "REG:XXXX" outcome summary for a LogLine.
func fmtWord(reg string, v uint16) string {
	return fmt.Sprintf("%s:%04X", reg, v)
}
