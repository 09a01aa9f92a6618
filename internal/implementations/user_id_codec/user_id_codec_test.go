package useridcodec

import (
	"fmt"
	"shopapi/internal/core/domain/user"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	codec *Base64
}

func (suite *testSuite) SetupTest() {
	suite.codec = NewBase64()
}

func TestBase64UserIDCodec(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestRoundTrip() {
	for _, id := range []user.ID{1, 42, 1234, 111222333, 1<<62 - 1} {
		s.Run(fmt.Sprintf("%d", id), func() {
			encoded := s.codec.EncodeUserID(id)
			decoded, ok := s.codec.DecodeUserID(encoded)
			s.True(ok)
			s.Equal(id, decoded)
		})
	}
}

func (s *testSuite) TestDecodeFails() {
	cases := []struct {
		id      string
		encoded string
	}{
		{id: "not-base64", encoded: "!!!"},
		{id: "not-a-number", encoded: "YWJj"},
		{id: "empty", encoded: ""},
		{id: "zero", encoded: "MA"},
		{id: "negative", encoded: "LTE"},
	}
	for _, testCase := range cases {
		s.Run(testCase.id, func() {
			_, ok := s.codec.DecodeUserID(user.EncodedUserID(testCase.encoded))
			s.False(ok)
		})
	}
}
