package server

import (
	"crypto/tls"
	"fmt"
	"net"
)

// TLSListener listens with a certificate and key loaded from disk.
type TLSListener struct {
	certFileName       string
	privateKeyFileName string
}

func NewTLSListener(certFileName, privateKeyFileName string) *TLSListener {
	return &TLSListener{
		certFileName:       certFileName,
		privateKeyFileName: privateKeyFileName,
	}
}

// Config loads the key pair and returns the server TLS configuration.
// Protocol versions below TLS 1.2 are refused.
func (l *TLSListener) Config() (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(l.certFileName, l.privateKeyFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

func (l *TLSListener) Listen(protocol, addr string) (net.Listener, error) {
	cfg, err := l.Config()
	if err != nil {
		return nil, err
	}
	return tls.Listen(protocol, addr, cfg)
}

// PlainListener listens without encryption. Use it only behind a
// terminating proxy or for local development.
type PlainListener struct{}

func NewPlainListener() *PlainListener {
	return &PlainListener{}
}

func (l *PlainListener) Listen(protocol, addr string) (net.Listener, error) {
	return net.Listen(protocol, addr)
}
