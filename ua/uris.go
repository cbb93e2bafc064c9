// Copyright 2025 UAForge Authors. All rights reserved.

package ua

// SecurityPolicyURIs
const (
	SecurityPolicyURINone                = "http://opcfoundation.org/UA/SecurityPolicy#None"
	SecurityPolicyURIBasic128Rsa15       = "http://opcfoundation.org/UA/SecurityPolicy#Basic128Rsa15"
	SecurityPolicyURIBasic256            = "http://opcfoundation.org/UA/SecurityPolicy#Basic256"
	SecurityPolicyURIBasic256Sha256      = "http://opcfoundation.org/UA/SecurityPolicy#Basic256Sha256"
	SecurityPolicyURIAes128Sha256RsaOaep = "http://opcfoundation.org/UA/SecurityPolicy#Aes128_Sha256_RsaOaep"
	SecurityPolicyURIAes256Sha256RsaPss  = "http://opcfoundation.org/UA/SecurityPolicy#Aes256_Sha256_RsaPss"
	SecurityPolicyURIBestAvailable       = ""
)

// RSA URIs.
const (
	RsaSha1Signature      = "http://www.w3.org/2000/09/xmldsig#rsa-sha1"
	RsaSha256Signature    = "http://www.w3.org/2001/04/xmldsig-more#rsa-sha256"
	RsaPssSha256Signature = "http://opcfoundation.org/UA/security/rsa-pss-sha2-256"
	RsaV15KeyWrap         = "http://www.w3.org/2001/04/xmlenc#rsa-1_5"
	RsaOaepKeyWrap        = "http://www.w3.org/2001/04/xmlenc#rsa-oaep"
	RsaOaepSha256KeyWrap  = "http://opcfoundation.org/UA/security/rsa-oaep-sha2-256"
)

// TransportProfileURIs
const (
	TransportProfileURIUaTcpTransport = "http://opcfoundation.org/UA-Profile/Transport/uatcp-uasc-uabinary"
)
