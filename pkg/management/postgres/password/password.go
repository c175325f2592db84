/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

// Package password contains the routines encoding a declared password
// into the verifier form stored by PostgreSQL
package password

import (
	"crypto/hmac"
	"crypto/md5" // #nosec G501 -- md5 verifiers are part of the PostgreSQL protocol
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/xdg-go/stringprep"
)

const (
	scramIterations = 4096
	scramSaltLength = 16
)

// MD5 hashes a password using MD5 with the username as the salt,
// producing the "md5"-prefixed verifier understood by PostgreSQL.
//
// The returned string never contains characters that would require
// escaping in an SQL command.
func MD5(password []byte, username string) string {
	salted := make([]byte, 0, len(password)+len(username))
	salted = append(salted, password...)
	salted = append(salted, username...)

	return fmt.Sprintf("md5%x", md5.Sum(salted)) // #nosec G401
}

// ScramSHA256 hashes a password using SCRAM-SHA-256 with a
// randomly-generated salt, producing a verifier in the form stored
// inside pg_authid.
func ScramSHA256(password []byte) string {
	salt := make([]byte, scramSaltLength)
	if _, err := rand.Read(salt); err != nil {
		// rand.Read only fails when the platform CSPRNG is broken,
		// and there is no meaningful way to continue without it
		panic(err)
	}

	return scramSHA256WithSalt(password, salt)
}

// scramSHA256WithSalt is the implementation of ScramSHA256 with a
// caller-provided salt, kept separate so tests can inject a fixed one
func scramSHA256WithSalt(password, salt []byte) string {
	prepared := saslPrep(password)

	saltedPassword := hi(prepared, salt, scramIterations)

	clientKey := hmacSHA256(saltedPassword, []byte("Client Key"))
	storedKey := sha256.Sum256(clientKey)
	serverKey := hmacSHA256(saltedPassword, []byte("Server Key"))

	encode := base64.StdEncoding.EncodeToString
	return fmt.Sprintf("SCRAM-SHA-256$%v:%v$%v:%v",
		scramIterations,
		encode(salt),
		encode(storedKey[:]),
		encode(serverKey))
}

// saslPrep normalizes a password per RFC 4013 when possible.
//
// PostgreSQL treats passwords as byte strings, while SASL expects
// valid UTF-8. Following the behavior of libpq's
// PQencryptPasswordConn, a password that is not valid UTF-8 or that
// contains prohibited characters is used unchanged.
func saslPrep(password []byte) []byte {
	if !utf8.Valid(password) {
		return password
	}

	prepared, err := stringprep.SASLprep.Prepare(string(password))
	if err != nil {
		return password
	}

	return []byte(prepared)
}

// hi computes Hi(P, S, i) as defined by RFC 5802: the XOR of the chain
// U1 = HMAC(P, S || INT(1)), Uj = HMAC(P, U(j-1))
func hi(password, salt []byte, iterations int) []byte {
	mac := hmac.New(sha256.New, password)
	mac.Write(salt)
	mac.Write([]byte{0, 0, 0, 1})
	prev := mac.Sum(nil)

	result := make([]byte, len(prev))
	copy(result, prev)

	for i := 1; i < iterations; i++ {
		prev = hmacSHA256(password, prev)
		for j := range result {
			result[j] ^= prev[j]
		}
	}

	return result
}

func hmacSHA256(key, message []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}
