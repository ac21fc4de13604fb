package ringmember

import "net"

// resolveAdvertisedAddress returns advertisedAddress unchanged if set, otherwise discovers the machine's own
// outbound IP address by dialing out and inspecting the local end of the connection, without ever sending a
// packet.
func resolveAdvertisedAddress(advertisedAddress string) (string, error) {
	if advertisedAddress != "" {
		return advertisedAddress, nil
	}
	connection, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "", err
	}
	defer connection.Close()
	return connection.LocalAddr().(*net.UDPAddr).IP.String(), nil
}
