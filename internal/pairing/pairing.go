// Package pairing помогает подключить компаньон: находит адрес сервера в
// локальной сети и показывает его вместе с PIN в виде QR кода.
package pairing

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strconv"

	"github.com/skip2/go-qrcode"
)

// Scheme URL схема payload сопряжения
const Scheme = "lansync"

// ErrNoLocalIP не найден ни один подходящий IPv4 адрес
var ErrNoLocalIP = errors.New("no non-loopback IPv4 address found")

// Info данные для подключения компаньона
type Info struct {
	Pin  *string // nil - сервер без PIN
	Host string
	Name string
	Port int
}

// LocalIP возвращает первый IPv4 адрес активного не-loopback интерфейса.
// Link-local адреса (169.254.0.0/16) пропускаются.
func LocalIP() (string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", fmt.Errorf("failed to list interfaces: %w", err)
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		if ip := firstUsableIPv4(addrs); ip != "" {
			return ip, nil
		}
	}

	return "", ErrNoLocalIP
}

func firstUsableIPv4(addrs []net.Addr) string {
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		ip := ipNet.IP.To4()
		if ip == nil || ip.IsLoopback() || ip.IsLinkLocalUnicast() {
			continue
		}
		return ip.String()
	}
	return ""
}

// Payload строит URL сопряжения: lansync://pair?host=<ip>&port=<port>[&pin=<pin>][&name=<name>]
func Payload(info Info) string {
	query := url.Values{}
	query.Set("host", info.Host)
	query.Set("port", strconv.Itoa(info.Port))
	if info.Pin != nil && *info.Pin != "" {
		query.Set("pin", *info.Pin)
	}
	if info.Name != "" {
		query.Set("name", info.Name)
	}

	u := url.URL{
		Scheme:   Scheme,
		Host:     "pair",
		RawQuery: query.Encode(),
	}
	return u.String()
}

// ParsePayload разбирает URL сопряжения, полученный со сканера QR
func ParsePayload(payload string) (Info, error) {
	u, err := url.Parse(payload)
	if err != nil {
		return Info{}, fmt.Errorf("invalid pairing payload: %w", err)
	}
	if u.Scheme != Scheme || u.Host != "pair" {
		return Info{}, fmt.Errorf("invalid pairing payload: unexpected %s://%s", u.Scheme, u.Host)
	}

	query := u.Query()
	info := Info{
		Host: query.Get("host"),
		Name: query.Get("name"),
	}
	if info.Host == "" {
		return Info{}, fmt.Errorf("invalid pairing payload: missing host")
	}

	info.Port, err = strconv.Atoi(query.Get("port"))
	if err != nil || info.Port <= 0 || info.Port > 65535 {
		return Info{}, fmt.Errorf("invalid pairing payload: bad port %q", query.Get("port"))
	}

	if query.Has("pin") {
		pin := query.Get("pin")
		info.Pin = &pin
	}

	return info, nil
}

// DisplayQR печатает QR код сопряжения и текстовую подсказку.
// Если QR не удалось построить, печатается только текст.
func DisplayQR(w io.Writer, info Info) {
	payload := Payload(info)

	qr, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		fmt.Fprintf(w, "Error generating QR code: %v\n", err)
		fmt.Fprintf(w, "Falling back to text display.\n\n")
		DisplayText(w, info)
		return
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "===========================================")
	fmt.Fprintln(w, "         SCAN TO PAIR")
	fmt.Fprintln(w, "===========================================")
	fmt.Fprintln(w, "")
	fmt.Fprint(w, qr.ToSmallString(false))
	DisplayText(w, info)
}

// DisplayText печатает адрес сервера и PIN текстом
func DisplayText(w io.Writer, info Info) {
	pin := "(none)"
	if info.Pin != nil && *info.Pin != "" {
		pin = *info.Pin
	}

	fmt.Fprintln(w, "-------------------------------------------")
	if info.Name != "" {
		fmt.Fprintf(w, "  Server:  %s\n", info.Name)
	}
	fmt.Fprintf(w, "  Address: %s\n", net.JoinHostPort(info.Host, strconv.Itoa(info.Port)))
	fmt.Fprintf(w, "  PIN:     %s\n", pin)
	fmt.Fprintln(w, "===========================================")
	fmt.Fprintln(w, "")
}
