/*
Package nid implements the symbolic identifier registry shared by the
native engine and the asn1safe package.

Each [Nid] names one well-known OBJECT IDENTIFIER. The numeric values
match the ones assigned by the OpenSSL object database so that handles
produced elsewhere resolve to the same symbols.
*/
package nid

import (
	"encoding/asn1"
	"slices"
	"strconv"
)

/*
Nid is a numeric symbolic identifier for a registered OBJECT IDENTIFIER.
The zero value is [Undef].
*/
type Nid int

/*
Undef is the sentinel returned when an OBJECT IDENTIFIER has no
registered symbolic identifier.
*/
const Undef Nid = 0

// X.520 attribute types.
const (
	CommonName             Nid = 13
	CountryName            Nid = 14
	LocalityName           Nid = 15
	StateOrProvinceName    Nid = 16
	OrganizationName       Nid = 17
	OrganizationalUnitName Nid = 18
	GivenName              Nid = 99
	Surname                Nid = 100
	SerialNumber           Nid = 105
	Title                  Nid = 106
	EmailAddress           Nid = 48
	DomainComponent        Nid = 391
	UserID                 Nid = 458
)

// Digest and signature algorithms.
const (
	MD5                     Nid = 4
	RSAEncryption           Nid = 6
	MD5WithRSAEncryption    Nid = 8
	SHA1                    Nid = 64
	SHA1WithRSAEncryption   Nid = 65
	SHA256WithRSAEncryption Nid = 668
	SHA384WithRSAEncryption Nid = 669
	SHA512WithRSAEncryption Nid = 670
	SHA256                  Nid = 672
	SHA384                  Nid = 673
	SHA512                  Nid = 674
	SHA224                  Nid = 675
	ECPublicKey             Nid = 408
	Prime256v1              Nid = 415
	Secp384r1               Nid = 715
	Secp521r1               Nid = 716
	ECDSAWithSHA256         Nid = 794
	ECDSAWithSHA384         Nid = 795
	ECDSAWithSHA512         Nid = 796
	X25519                  Nid = 1034
	X448                    Nid = 1035
	ED25519                 Nid = 1087
	ED448                   Nid = 1088
)

// X.509v3 extensions and key purposes.
const (
	SubjectKeyIdentifier   Nid = 82
	KeyUsage               Nid = 83
	SubjectAltName         Nid = 85
	BasicConstraints       Nid = 87
	CertificatePolicies    Nid = 89
	AuthorityKeyIdentifier Nid = 90
	CRLDistributionPoints  Nid = 103
	ExtKeyUsage            Nid = 126
	ServerAuth             Nid = 129
	ClientAuth             Nid = 130
	CodeSigning            Nid = 131
	EmailProtection        Nid = 132
	TimeStamping           Nid = 133
	AuthorityInfoAccess    Nid = 177
	OCSP                   Nid = 178
	CAIssuers              Nid = 179
	OCSPSigning            Nid = 180
)

/*
Entry describes one registered symbolic identifier.
*/
type Entry struct {
	Nid       Nid
	ShortName string
	LongName  string
	OID       asn1.ObjectIdentifier
}

func oid(arcs ...int) asn1.ObjectIdentifier { return asn1.ObjectIdentifier(arcs) }

var table = map[Nid]Entry{
	CommonName:             {CommonName, "CN", "commonName", oid(2, 5, 4, 3)},
	CountryName:            {CountryName, "C", "countryName", oid(2, 5, 4, 6)},
	LocalityName:           {LocalityName, "L", "localityName", oid(2, 5, 4, 7)},
	StateOrProvinceName:    {StateOrProvinceName, "ST", "stateOrProvinceName", oid(2, 5, 4, 8)},
	OrganizationName:       {OrganizationName, "O", "organizationName", oid(2, 5, 4, 10)},
	OrganizationalUnitName: {OrganizationalUnitName, "OU", "organizationalUnitName", oid(2, 5, 4, 11)},
	GivenName:              {GivenName, "GN", "givenName", oid(2, 5, 4, 42)},
	Surname:                {Surname, "SN", "surname", oid(2, 5, 4, 4)},
	SerialNumber:           {SerialNumber, "serialNumber", "serialNumber", oid(2, 5, 4, 5)},
	Title:                  {Title, "title", "title", oid(2, 5, 4, 12)},
	EmailAddress:           {EmailAddress, "emailAddress", "emailAddress", oid(1, 2, 840, 113549, 1, 9, 1)},
	DomainComponent:        {DomainComponent, "DC", "domainComponent", oid(0, 9, 2342, 19200300, 100, 1, 25)},
	UserID:                 {UserID, "UID", "userId", oid(0, 9, 2342, 19200300, 100, 1, 1)},

	MD5:                     {MD5, "MD5", "md5", oid(1, 2, 840, 113549, 2, 5)},
	RSAEncryption:           {RSAEncryption, "rsaEncryption", "rsaEncryption", oid(1, 2, 840, 113549, 1, 1, 1)},
	MD5WithRSAEncryption:    {MD5WithRSAEncryption, "RSA-MD5", "md5WithRSAEncryption", oid(1, 2, 840, 113549, 1, 1, 4)},
	SHA1:                    {SHA1, "SHA1", "sha1", oid(1, 3, 14, 3, 2, 26)},
	SHA1WithRSAEncryption:   {SHA1WithRSAEncryption, "RSA-SHA1", "sha1WithRSAEncryption", oid(1, 2, 840, 113549, 1, 1, 5)},
	SHA256WithRSAEncryption: {SHA256WithRSAEncryption, "RSA-SHA256", "sha256WithRSAEncryption", oid(1, 2, 840, 113549, 1, 1, 11)},
	SHA384WithRSAEncryption: {SHA384WithRSAEncryption, "RSA-SHA384", "sha384WithRSAEncryption", oid(1, 2, 840, 113549, 1, 1, 12)},
	SHA512WithRSAEncryption: {SHA512WithRSAEncryption, "RSA-SHA512", "sha512WithRSAEncryption", oid(1, 2, 840, 113549, 1, 1, 13)},
	SHA256:                  {SHA256, "SHA256", "sha256", oid(2, 16, 840, 1, 101, 3, 4, 2, 1)},
	SHA384:                  {SHA384, "SHA384", "sha384", oid(2, 16, 840, 1, 101, 3, 4, 2, 2)},
	SHA512:                  {SHA512, "SHA512", "sha512", oid(2, 16, 840, 1, 101, 3, 4, 2, 3)},
	SHA224:                  {SHA224, "SHA224", "sha224", oid(2, 16, 840, 1, 101, 3, 4, 2, 4)},
	ECPublicKey:             {ECPublicKey, "id-ecPublicKey", "id-ecPublicKey", oid(1, 2, 840, 10045, 2, 1)},
	Prime256v1:              {Prime256v1, "prime256v1", "prime256v1", oid(1, 2, 840, 10045, 3, 1, 7)},
	Secp384r1:               {Secp384r1, "secp384r1", "secp384r1", oid(1, 3, 132, 0, 34)},
	Secp521r1:               {Secp521r1, "secp521r1", "secp521r1", oid(1, 3, 132, 0, 35)},
	ECDSAWithSHA256:         {ECDSAWithSHA256, "ecdsa-with-SHA256", "ecdsa-with-SHA256", oid(1, 2, 840, 10045, 4, 3, 2)},
	ECDSAWithSHA384:         {ECDSAWithSHA384, "ecdsa-with-SHA384", "ecdsa-with-SHA384", oid(1, 2, 840, 10045, 4, 3, 3)},
	ECDSAWithSHA512:         {ECDSAWithSHA512, "ecdsa-with-SHA512", "ecdsa-with-SHA512", oid(1, 2, 840, 10045, 4, 3, 4)},
	X25519:                  {X25519, "X25519", "X25519", oid(1, 3, 101, 110)},
	X448:                    {X448, "X448", "X448", oid(1, 3, 101, 111)},
	ED25519:                 {ED25519, "ED25519", "ED25519", oid(1, 3, 101, 112)},
	ED448:                   {ED448, "ED448", "ED448", oid(1, 3, 101, 113)},

	SubjectKeyIdentifier:   {SubjectKeyIdentifier, "subjectKeyIdentifier", "X509v3 Subject Key Identifier", oid(2, 5, 29, 14)},
	KeyUsage:               {KeyUsage, "keyUsage", "X509v3 Key Usage", oid(2, 5, 29, 15)},
	SubjectAltName:         {SubjectAltName, "subjectAltName", "X509v3 Subject Alternative Name", oid(2, 5, 29, 17)},
	BasicConstraints:       {BasicConstraints, "basicConstraints", "X509v3 Basic Constraints", oid(2, 5, 29, 19)},
	CertificatePolicies:    {CertificatePolicies, "certificatePolicies", "X509v3 Certificate Policies", oid(2, 5, 29, 32)},
	AuthorityKeyIdentifier: {AuthorityKeyIdentifier, "authorityKeyIdentifier", "X509v3 Authority Key Identifier", oid(2, 5, 29, 35)},
	CRLDistributionPoints:  {CRLDistributionPoints, "crlDistributionPoints", "X509v3 CRL Distribution Points", oid(2, 5, 29, 31)},
	ExtKeyUsage:            {ExtKeyUsage, "extendedKeyUsage", "X509v3 Extended Key Usage", oid(2, 5, 29, 37)},
	ServerAuth:             {ServerAuth, "serverAuth", "TLS Web Server Authentication", oid(1, 3, 6, 1, 5, 5, 7, 3, 1)},
	ClientAuth:             {ClientAuth, "clientAuth", "TLS Web Client Authentication", oid(1, 3, 6, 1, 5, 5, 7, 3, 2)},
	CodeSigning:            {CodeSigning, "codeSigning", "Code Signing", oid(1, 3, 6, 1, 5, 5, 7, 3, 3)},
	EmailProtection:        {EmailProtection, "emailProtection", "E-mail Protection", oid(1, 3, 6, 1, 5, 5, 7, 3, 4)},
	TimeStamping:           {TimeStamping, "timeStamping", "Time Stamping", oid(1, 3, 6, 1, 5, 5, 7, 3, 8)},
	AuthorityInfoAccess:    {AuthorityInfoAccess, "authorityInfoAccess", "Authority Information Access", oid(1, 3, 6, 1, 5, 5, 7, 1, 1)},
	OCSP:                   {OCSP, "OCSP", "OCSP", oid(1, 3, 6, 1, 5, 5, 7, 48, 1)},
	CAIssuers:              {CAIssuers, "caIssuers", "CA Issuers", oid(1, 3, 6, 1, 5, 5, 7, 48, 2)},
	OCSPSigning:            {OCSPSigning, "OCSPSigning", "OCSP Signing", oid(1, 3, 6, 1, 5, 5, 7, 3, 9)},
}

var (
	bySN  = make(map[string]Nid, len(table))
	byLN  = make(map[string]Nid, len(table))
	byOID = make(map[string]Nid, len(table))
)

func init() {
	for n, e := range table {
		bySN[e.ShortName] = n
		byLN[e.LongName] = n
		byOID[e.OID.String()] = n
	}
}

/*
Lookup returns the [Entry] registered for n.
*/
func Lookup(n Nid) (e Entry, ok bool) {
	e, ok = table[n]
	return
}

/*
Known returns a Boolean value indicative of n being registered.
*/
func (n Nid) Known() bool {
	_, ok := table[n]
	return ok
}

/*
ShortName returns the registered short name of n, or the empty string.
*/
func (n Nid) ShortName() string { return table[n].ShortName }

/*
LongName returns the registered long name of n, or the empty string.
*/
func (n Nid) LongName() string { return table[n].LongName }

/*
OID returns a copy of the numeric arcs registered for n, or nil.
*/
func (n Nid) OID() asn1.ObjectIdentifier {
	if e, ok := table[n]; ok {
		return slices.Clone(e.OID)
	}
	return nil
}

// String returns the short name, or "NID(n)" when unregistered.
func (n Nid) String() string {
	if e, ok := table[n]; ok {
		return e.ShortName
	}
	return "NID(" + strconv.Itoa(int(n)) + ")"
}

// ByShortName resolves a short name such as "CN".
func ByShortName(s string) (Nid, bool) {
	n, ok := bySN[s]
	return n, ok
}

// ByLongName resolves a long name such as "commonName".
func ByLongName(s string) (Nid, bool) {
	n, ok := byLN[s]
	return n, ok
}

// ByOID resolves numeric arcs to a registered identifier.
func ByOID(o asn1.ObjectIdentifier) (Nid, bool) {
	if len(o) == 0 {
		return Undef, false
	}
	n, ok := byOID[o.String()]
	return n, ok
}

/*
All returns every registered [Entry] in ascending [Nid] order.
*/
func All() []Entry {
	out := make([]Entry, 0, len(table))
	for _, e := range table {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int { return int(a.Nid) - int(b.Nid) })
	return out
}
