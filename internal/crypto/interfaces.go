package crypto

// Hasher computes the one-way digest that gates vault access. The digest of
// the master passphrase is the only authentication material ever persisted;
// the passphrase itself never touches disk.
type Hasher interface {
	// Digest returns a fixed-length, lowercase-hex, deterministic digest of
	// the passphrase bytes. No salt is applied: identical passphrases
	// produce identical digests across installations.
	Digest(passphrase []byte) string
}

// Codec is the reversible keyed transform applied to the password field
// before it is written to the vault file. The store layer depends only on
// this interface, so the at-rest primitive can be swapped (e.g. for an
// authenticated cipher) without touching the record or file contracts.
// Swapping the codec changes the on-disk password encoding.
type Codec interface {
	// Encode obscures plain with key and returns a single-line text
	// representation safe to embed in the vault file.
	// Returns [ErrEmptyKey] if key is empty.
	Encode(plain, key []byte) (string, error)

	// Decode is the inverse of Encode with the same key.
	// Returns [ErrEmptyKey] for an empty key and [ErrMalformedCiphertext]
	// when encoded is not a value Encode could have produced.
	Decode(encoded string, key []byte) ([]byte, error)
}

// KeyChain derives fixed-length key material from the master passphrase.
// It is used only by the AES-GCM codec mode; the XOR mode keys the
// transform with the raw passphrase bytes.
type KeyChain interface {
	// GenerateSalt reads 16 random bytes from the OS CSPRNG.
	GenerateSalt() ([]byte, error)

	// DeriveKey stretches the passphrase and salt into a 32-byte key
	// using Argon2id. Deterministic for the same passphrase and salt.
	DeriveKey(passphrase string, salt []byte) []byte
}

// Generator produces random passwords from a fixed alphabet.
type Generator interface {
	// Generate returns a password of exactly length characters, each drawn
	// independently from the generator alphabet. length must be positive.
	Generate(length int) (string, error)
}
