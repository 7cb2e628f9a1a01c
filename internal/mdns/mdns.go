// Package mdns объявляет сервер синхронизации в локальной сети через mDNS/DNS-SD,
// чтобы компаньон мог найти его без ручного ввода IP.
//
// Объявление содержит:
//   - тип сервиса _lansync._tcp
//   - TXT записи version, name и pin (1 если сервер требует PIN, иначе 0)
//
// Сам PIN никогда не объявляется.
package mdns

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/grandcat/zeroconf"

	"github.com/iudanet/lansync/pkg/api"
)

// ServiceType тип mDNS сервиса
const ServiceType = "_lansync._tcp"

// Domain домен mDNS
const Domain = "local."

// shutdowner зарегистрированный сервис
type shutdowner interface {
	Shutdown()
}

type registerFunc func(instance, service, domain string, port int, text []string) (shutdowner, error)

func zeroconfRegister(instance, service, domain string, port int, text []string) (shutdowner, error) {
	// nil - все сетевые интерфейсы
	return zeroconf.Register(instance, service, domain, port, text, nil)
}

// Advertiser управляет регистрацией сервиса в mDNS
type Advertiser struct {
	server   shutdowner
	register registerFunc
	mu       sync.Mutex
}

// NewAdvertiser создает advertiser
func NewAdvertiser() *Advertiser {
	return &Advertiser{register: zeroconfRegister}
}

// Start начинает объявлять сервер. Повторный Start заменяет предыдущее объявление,
// так как порт и признак PIN могли измениться при перезапуске сервера.
func (a *Advertiser) Start(serverName string, port int, hasPin bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
	}

	name := serverName
	if name == "" {
		hostname, err := os.Hostname()
		if err != nil {
			name = "lansync"
		} else {
			name = hostname
		}
	}

	server, err := a.register(name, ServiceType, Domain, port, txtRecords(name, hasPin))
	if err != nil {
		return fmt.Errorf("mdns register: %w", err)
	}

	a.server = server
	return nil
}

// Stop снимает объявление. Безопасно вызывать многократно и до Start.
func (a *Advertiser) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
	}
}

// IsRunning сообщает, объявлен ли сервер
func (a *Advertiser) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.server != nil
}

// txtRecords формирует TXT записи. DNS ограничивает одну строку 255 байтами.
func txtRecords(name string, hasPin bool) []string {
	pin := "0"
	if hasPin {
		pin = "1"
	}
	return []string{
		"version=" + strconv.Itoa(api.ProtocolVersion),
		"name=" + name,
		"pin=" + pin,
	}
}

// DiscoveredHost сервер, найденный через mDNS
type DiscoveredHost struct {
	Name    string
	Host    string
	Version string
	Port    int
	HasPin  bool
}

// Discover ищет серверы в локальной сети до отмены ctx.
// Обычно вызывается с таймаутом в несколько секунд.
func Discover(ctx context.Context) ([]DiscoveredHost, error) {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("mdns resolver: %w", err)
	}

	var (
		hosts []DiscoveredHost
		wg    sync.WaitGroup
	)

	entries := make(chan *zeroconf.ServiceEntry)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for entry := range entries {
			hosts = append(hosts, hostFromEntry(entry))
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, Domain, entries); err != nil {
		return nil, fmt.Errorf("mdns browse: %w", err)
	}

	<-ctx.Done()

	// zeroconf закрывает entries после отмены контекста
	wg.Wait()

	return hosts, nil
}

func hostFromEntry(entry *zeroconf.ServiceEntry) DiscoveredHost {
	host := DiscoveredHost{
		Name: entry.Instance,
		Port: entry.Port,
	}

	// Предпочитаем IPv4
	if len(entry.AddrIPv4) > 0 {
		host.Host = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		host.Host = entry.AddrIPv6[0].String()
	}

	for _, txt := range entry.Text {
		key, value, ok := strings.Cut(txt, "=")
		if !ok {
			continue
		}
		switch key {
		case "version":
			host.Version = value
		case "name":
			if value != "" {
				host.Name = value
			}
		case "pin":
			host.HasPin = value == "1"
		}
	}

	return host
}
