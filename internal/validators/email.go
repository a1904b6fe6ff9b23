package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid hace una verificación barata del dominio antes de
// crear la cuenta de staff: alcanza con que el dominio resuelva MX o, en
// su defecto, una IP. No valida que el buzón exista.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	host := email[at+1:]

	if records, err := net.LookupMX(host); err == nil && len(records) > 0 {
		return true
	}

	// dominios sin MX que reciben correo directo por A/AAAA
	ips, err := net.LookupIP(host)
	return err == nil && len(ips) > 0
}
