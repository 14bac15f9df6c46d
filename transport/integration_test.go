/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package transport_test

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	libtls "github.com/nabbar/vdms/certificate"
	libtrp "github.com/nabbar/vdms/transport"
)

func freePort() int {
	l, err := net.Listen("tcp4", ":0")
	Expect(err).ToNot(HaveOccurred())
	port := l.Addr().(*net.TCPAddr).Port
	Expect(l.Close()).To(Succeed())
	return port
}

func genServerPairFiles(dir string) (certFile, keyFile string) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	Expect(err).ToNot(HaveOccurred())

	tmpl := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "localhost"},
		DNSNames:     []string{"localhost"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		IsCA:         true,
	}

	der, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &priv.PublicKey, priv)
	Expect(err).ToNot(HaveOccurred())

	bufCert := bytes.NewBuffer(nil)
	Expect(pem.Encode(bufCert, &pem.Block{Type: "CERTIFICATE", Bytes: der})).To(Succeed())

	pk, err := x509.MarshalPKCS8PrivateKey(priv)
	Expect(err).ToNot(HaveOccurred())
	bufKey := bytes.NewBuffer(nil)
	Expect(pem.Encode(bufKey, &pem.Block{Type: "PRIVATE KEY", Bytes: pk})).To(Succeed())

	certFile = filepath.Join(dir, "srv-cert.pem")
	keyFile = filepath.Join(dir, "srv-key.pem")
	Expect(os.WriteFile(certFile, bufCert.Bytes(), 0600)).To(Succeed())
	Expect(os.WriteFile(keyFile, bufKey.Bytes(), 0600)).To(Succeed())

	return certFile, keyFile
}

var _ = Describe("ConnServer / DialConnClient", func() {
	It("should accept a plain TCP client and exchange frames both ways", func() {
		port := freePort()
		srv := libtrp.NewConnServer(port, nil, 0, nil)
		Expect(srv.Listen()).To(BeNil())
		defer func() { _ = srv.Shutdown() }()

		serverConn := make(chan *libtrp.Connection, 1)
		go func() {
			c, err := srv.Accept()
			Expect(err).To(BeNil())
			serverConn <- c
		}()

		cli, err := libtrp.DialConnClient("127.0.0.1", port, nil, 2*time.Second, 0)
		Expect(err).To(BeNil())
		defer func() { _ = cli.Close() }()

		sc := <-serverConn
		defer func() { _ = sc.Close() }()

		Expect(cli.Send([]byte("ping"))).To(BeNil())
		msg, rErr := sc.Receive()
		Expect(rErr).To(BeNil())
		Expect(string(msg)).To(Equal("ping"))

		Expect(sc.Send([]byte("pong"))).To(BeNil())
		msg2, rErr2 := cli.Receive()
		Expect(rErr2).To(BeNil())
		Expect(string(msg2)).To(Equal("pong"))

		Expect(sc.IsTLS()).To(BeFalse())
		Expect(cli.IsTLS()).To(BeFalse())
	})

	It("should complete a TLS handshake and exchange frames both ways", func() {
		dir, dErr := os.MkdirTemp("", "vdms-transport-tls-*")
		Expect(dErr).ToNot(HaveOccurred())
		defer func() { _ = os.RemoveAll(dir) }()

		certFile, keyFile := genServerPairFiles(dir)

		srvTLS, cErr := libtls.Config{
			CertFile:    certFile,
			KeyFile:     keyFile,
			RootCAFiles: []string{certFile},
		}.NewFrom(nil)
		Expect(cErr).To(BeNil())

		cliTLS, cErr2 := libtls.Config{
			RootCAFiles: []string{certFile},
		}.NewFrom(nil)
		Expect(cErr2).To(BeNil())

		port := freePort()
		srv := libtrp.NewConnServer(port, srvTLS, 0, nil)
		Expect(srv.Listen()).To(BeNil())
		defer func() { _ = srv.Shutdown() }()

		serverConn := make(chan *libtrp.Connection, 1)
		serverErr := make(chan error, 1)
		go func() {
			c, err := srv.Accept()
			if err != nil {
				serverErr <- err
				return
			}
			serverConn <- c
		}()

		cli, err := libtrp.DialConnClient("localhost", port, cliTLS, 2*time.Second, 0)
		Expect(err).To(BeNil())
		defer func() { _ = cli.Close() }()

		var sc *libtrp.Connection
		select {
		case sc = <-serverConn:
		case e := <-serverErr:
			Fail(e.Error())
		}
		defer func() { _ = sc.Close() }()

		Expect(cli.IsTLS()).To(BeTrue())
		Expect(sc.IsTLS()).To(BeTrue())

		Expect(cli.Send([]byte("secure-ping"))).To(BeNil())
		msg, rErr := sc.Receive()
		Expect(rErr).To(BeNil())
		Expect(string(msg)).To(Equal("secure-ping"))
	})

	It("Shutdown should stop the listener and IsRunning should report it", func() {
		port := freePort()
		srv := libtrp.NewConnServer(port, nil, 0, nil)
		Expect(srv.Listen()).To(BeNil())
		Expect(srv.IsRunning()).To(BeTrue())

		Expect(srv.Shutdown()).To(BeNil())
		Expect(srv.IsRunning()).To(BeFalse())

		_, err := libtrp.DialConnClient("127.0.0.1", port, nil, 200*time.Millisecond, 0)
		Expect(err).ToNot(BeNil())
	})
})
