package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidNames(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   string
		want Key
	}{
		{
			name: "category and service",
			in:   "Compute_AWSLambda.png",
			want: Key{Category: "Compute", Service: "AWSLambda", Ext: ".png", Source: "Compute_AWSLambda.png"},
		},
		{
			name: "with component",
			in:   "Storage_AmazonS3_Bucket.png",
			want: Key{Category: "Storage", Service: "AmazonS3", Component: "Bucket", Ext: ".png", Source: "Storage_AmazonS3_Bucket.png"},
		},
		{
			name: "large variant without component",
			in:   "Compute_AWSLambda_LARGE.png",
			want: Key{Category: "Compute", Service: "AWSLambda", Large: true, Ext: ".png", Source: "Compute_AWSLambda_LARGE.png"},
		},
		{
			name: "large variant with component",
			in:   "Storage_AmazonS3_Bucket_LARGE.gif",
			want: Key{Category: "Storage", Service: "AmazonS3", Component: "Bucket", Large: true, Ext: ".gif", Source: "Storage_AmazonS3_Bucket_LARGE.gif"},
		},
		{
			name: "nested path keeps only the base name",
			in:   "vendor/icons/Database_DynamoDB.png",
			want: Key{Category: "Database", Service: "DynamoDB", Ext: ".png", Source: "vendor/icons/Database_DynamoDB.png"},
		},
		{
			name: "punctuation inside a segment becomes an underscore",
			in:   "Analytics_Amazon-Kinesis.png",
			want: Key{Category: "Analytics", Service: "Amazon_Kinesis", Ext: ".png", Source: "Analytics_Amazon-Kinesis.png"},
		},
		{
			name: "uppercase extension is normalized",
			in:   "Compute_EC2.PNG",
			want: Key{Category: "Compute", Service: "EC2", Ext: ".png", Source: "Compute_EC2.PNG"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			key, err := Parse(tc.in)

			require.NoError(t, err)
			assert.Equal(t, tc.want, key)
		})
	}
}

func TestParse_InvalidNames(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   string
	}{
		{"missing service", "Compute.png"},
		{"only large marker after category", "Compute_LARGE.png"},
		{"too many segments", "A_B_C_D.png"},
		{"empty category", "_Service.png"},
		{"empty service", "Compute_.png"},
		{"unrecognized extension", "Compute_AWSLambda.svg"},
		{"no extension", "Compute_AWSLambda"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tc.in)

			require.ErrorIs(t, err, ErrNamingConvention)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	names := []string{
		"Compute_AWSLambda.png",
		"Storage_AmazonS3_Bucket.png",
		"Compute_AWSLambda_LARGE.png",
		"Storage_AmazonS3_Bucket_LARGE.jpeg",
	}

	for _, name := range names {
		key, err := Parse(name)

		require.NoError(t, err)
		assert.Equal(t, name, key.FileName())
	}
}

func TestKey_Name(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		key  Key
		want string
	}{
		{"service icon", Key{Category: "Compute", Service: "AWSLambda"}, "AWSLambda"},
		{"component icon", Key{Category: "Storage", Service: "AmazonS3", Component: "Bucket"}, "Bucket"},
		{"large service icon", Key{Category: "Compute", Service: "AWSLambda", Large: true}, "AWSLambda_LARGE"},
		{"large component icon", Key{Category: "Storage", Service: "AmazonS3", Component: "Bucket", Large: true}, "Bucket_LARGE"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.key.Name())
		})
	}
}

func TestKey_NameDistinguishesLargeVariant(t *testing.T) {
	t.Parallel()

	base, err := Parse("Compute_AWSLambda.png")
	require.NoError(t, err)

	large, err := Parse("Compute_AWSLambda_LARGE.png")
	require.NoError(t, err)

	assert.NotEqual(t, base.Name(), large.Name())
	assert.Equal(t, base.Segments(), large.Segments())
}
