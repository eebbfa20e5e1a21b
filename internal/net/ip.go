package net

import (
	"fmt"
	"log"
	"net"
	"strings"
)

// Scheme prefixes share links handed to viewers.
const Scheme = "lashmap://"

// GetOutgoingIP finds the preferred local IP address for the host to share.
func GetOutgoingIP() (string, error) {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// No route out; fall back to the interfaces.
		return firstIPv4().String(), nil
	}
	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)
	return localAddr.IP.String(), nil
}

// firstIPv4 returns the first address of an interface that is up and not
// loopback.
func firstIPv4() net.IP {
	ifaces, _ := net.Interfaces()
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				return ipnet.IP.To4()
			}
		}
	}
	log.Println("[MIRROR] No suitable local IP found, share link uses loopback")
	return net.IPv4(127, 0, 0, 1)
}

// ShareLink builds the link a viewer opens to follow a host.
func ShareLink(host string, port int) string {
	return fmt.Sprintf("%s%s", Scheme, net.JoinHostPort(host, fmt.Sprint(port)))
}

// ParseShareLink returns the host:port carried by a share link.
func ParseShareLink(link string) (string, error) {
	if !strings.HasPrefix(link, Scheme) {
		return "", fmt.Errorf("not a %s link: %q", Scheme, link)
	}
	addr := strings.TrimSuffix(strings.TrimPrefix(link, Scheme), "/")
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return "", fmt.Errorf("bad share link %q: %w", link, err)
	}
	return addr, nil
}
