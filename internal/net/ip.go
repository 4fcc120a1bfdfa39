package net

import (
	"log/slog"
	"net"
)

// OutgoingIP returns the IPv4 address other machines should use to reach
// this one. It asks the kernel which source address routes off the host,
// and falls back to the first IPv4 address of an interface that is up.
func OutgoingIP() string {
	if ip := routedIPv4(); ip != nil {
		return ip.String()
	}
	if ip := firstIPv4(); ip != nil {
		return ip.String()
	}
	slog.Warn("no usable network interface, share link will be local only", "component", "net")
	return net.IPv4(127, 0, 0, 1).String()
}

// routedIPv4 "dials" a public address over UDP. Nothing is sent.
func routedIPv4() net.IP {
	conn, err := net.Dial("udp4", "8.8.8.8:80")
	if err != nil {
		return nil
	}
	defer conn.Close()
	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || addr.IP.IsLoopback() || addr.IP.IsUnspecified() {
		return nil
	}
	return addr.IP.To4()
}

func firstIPv4() net.IP {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok {
				if ip := ipnet.IP.To4(); ip != nil {
					return ip
				}
			}
		}
	}
	return nil
}
