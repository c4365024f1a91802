package server

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/dtroode/sessiond/internal/model"
)

// NewSecurityLayer returns a TLS listener factory when both certificate and
// key paths are set and a plain one otherwise. Setting only one is an error.
func NewSecurityLayer(certFile, keyFile string) (model.SecurityLayer, error) {
	switch {
	case certFile == "" && keyFile == "":
		return NewPlainListener(), nil
	case certFile == "" || keyFile == "":
		return nil, fmt.Errorf("tls needs both certificate and key, got cert=%q key=%q", certFile, keyFile)
	default:
		return NewTLSListener(certFile, keyFile), nil
	}
}

// TLSListener opens TLS listeners from a certificate and key on disk.
// The pair is read on every Listen so a restart picks up renewed files.
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

// Listen loads the key pair and listens with TLS 1.2 or newer.
func (l *TLSListener) Listen(protocol, addr string) (net.Listener, error) {
	cert, err := tls.LoadX509KeyPair(l.certFileName, l.privateKeyFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}
	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
		NextProtos:   []string{"h2", "http/1.1"},
	}
	return tls.Listen(protocol, addr, tlsConfig)
}

// PlainListener opens unencrypted listeners.
type PlainListener struct{}

func NewPlainListener() *PlainListener {
	return &PlainListener{}
}

func (l *PlainListener) Listen(protocol, addr string) (net.Listener, error) {
	return net.Listen(protocol, addr)
}
