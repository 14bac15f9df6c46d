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

package certificate_test

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	libtls "github.com/nabbar/vdms/certificate"
)

func genPairFiles(dir string) (certFile, keyFile string) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	Expect(err).ToNot(HaveOccurred())

	tmpl := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "vdms-test"},
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

	certFile = filepath.Join(dir, "cert.pem")
	keyFile = filepath.Join(dir, "key.pem")
	Expect(os.WriteFile(certFile, bufCert.Bytes(), 0600)).To(Succeed())
	Expect(os.WriteFile(keyFile, bufKey.Bytes(), 0600)).To(Succeed())

	return certFile, keyFile
}

var _ = Describe("Config", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "vdms-certificate-*")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(dir)
	})

	It("should report Empty() on a zero-value config", func() {
		var c libtls.Config
		Expect(c.Empty()).To(BeTrue())
	})

	It("should fall back to the default when empty and a default is registered", func() {
		var c libtls.Config
		def := libtls.New()

		out, err := c.NewFrom(def)
		Expect(err).To(BeNil())
		Expect(out).To(BeIdenticalTo(def))
	})

	It("should load a cert/key pair and build a usable tls.Config", func() {
		certFile, keyFile := genPairFiles(dir)

		c := libtls.Config{
			CertFile: certFile,
			KeyFile:  keyFile,
		}

		out, err := c.NewFrom(nil)
		Expect(err).To(BeNil())
		Expect(out).ToNot(BeNil())

		tlsCfg := out.TlsConfig("example.test")
		Expect(tlsCfg.ServerName).To(Equal("example.test"))
		Expect(tlsCfg.Certificates).To(HaveLen(1))
	})

	It("should fail when the cert file is missing", func() {
		c := libtls.Config{
			CertFile: filepath.Join(dir, "missing-cert.pem"),
			KeyFile:  filepath.Join(dir, "missing-key.pem"),
		}

		_, err := c.NewFrom(nil)
		Expect(err).ToNot(BeNil())
	})

	It("should load root and client CA files with a client-auth mode", func() {
		certFile, keyFile := genPairFiles(dir)

		c := libtls.Config{
			CertFile:      certFile,
			KeyFile:       keyFile,
			RootCAFiles:   []string{certFile},
			ClientCAFiles: []string{certFile},
			ClientAuth:    "require-and-verify",
		}

		out, err := c.NewFrom(nil)
		Expect(err).To(BeNil())

		tlsCfg := out.TlsConfig("")
		Expect(tlsCfg.RootCAs).ToNot(BeNil())
		Expect(tlsCfg.ClientCAs).ToNot(BeNil())
		Expect(tlsCfg.ClientAuth.String()).To(ContainSubstring("Verify"))
	})

	It("Clone should produce an independent copy", func() {
		certFile, keyFile := genPairFiles(dir)

		c := libtls.Config{CertFile: certFile, KeyFile: keyFile}
		out, err := c.NewFrom(nil)
		Expect(err).To(BeNil())

		clone := out.Clone()
		Expect(clone.TlsConfig("").Certificates).To(HaveLen(1))
	})
})
