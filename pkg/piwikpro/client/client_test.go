package client

import (
	"context"
	goerrors "errors"
	"net/http"
	"testing"

	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/errors"
	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/types"
	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"

	"github.com/matryer/is"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput
var method = expects.RequestMethod
var path = expects.RequestPath
var body = expects.RequestBody

func TestInit(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/native/init"),
			body(`{"apiUrl":"https://example.com","siteId":"1111-2222-3333-dddd"}`),
		),
		Returns(response.Code(http.StatusNoContent)),
	)
	defer s.Close()

	c := NewNativeClient(s.URL())

	err := c.Init(context.Background(), "https://example.com", "1111-2222-3333-dddd")

	is.NoErr(err)
	is.Equal(s.RequestCount(), 1)
}

func TestTrackScreenSendsOptions(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/native/track-screen"),
			body(`{"options":{"customDimensions":{"1":"pizza"},"title":"Menu"},"path":"example/path"}`),
		),
		Returns(response.Code(http.StatusNoContent)),
	)
	defer s.Close()

	c := NewNativeClient(s.URL())

	err := c.TrackScreen(context.Background(), "example/path", &types.ScreenViewOptions{
		CommonEventOptions: types.CommonEventOptions{
			CustomDimensions: types.CustomDimensions{"1": "pizza"},
		},
		Title: "Menu",
	})

	is.NoErr(err)
}

func TestTrackScreenWithoutOptionsSendsNull(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			path("/native/track-screen"),
			body(`{"options":null,"path":"example/path"}`),
		),
		Returns(response.Code(http.StatusNoContent)),
	)
	defer s.Close()

	c := NewNativeClient(s.URL())

	err := c.TrackScreen(context.Background(), "example/path", nil)

	is.NoErr(err)
}

func TestTrackProfileAttributes(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			path("/native/track-profile-attributes"),
			body(`{"profileAttributes":[{"name":"food","value":"pizza"}]}`),
		),
		Returns(response.Code(http.StatusNoContent)),
	)
	defer s.Close()

	c := NewNativeClient(s.URL())

	err := c.TrackProfileAttributes(context.Background(), []types.ProfileAttribute{{Name: "food", Value: "pizza"}})

	is.NoErr(err)
}

func TestGetDispatchInterval(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/native/get-dispatch-interval"),
			body(`{}`),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"value":30}`)),
		),
	)
	defer s.Close()

	c := NewNativeClient(s.URL())

	interval, err := c.GetDispatchInterval(context.Background())

	is.NoErr(err)
	is.Equal(interval, 30)
}

func TestGetProfileAttributes(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, path("/native/get-profile-attributes")),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"value":{"food":"pizza","color":"green"}}`)),
		),
	)
	defer s.Close()

	c := NewNativeClient(s.URL())

	attrs, err := c.GetProfileAttributes(context.Background())

	is.NoErr(err)
	is.Equal(attrs, map[string]string{"food": "pizza", "color": "green"})
}

func TestCheckAudienceMembership(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			path("/native/check-audience-membership"),
			body(`{"audienceId":"a83d4aac"}`),
		),
		Returns(
			response.Code(http.StatusOK),
			response.Body([]byte(`{"value":true}`)),
		),
	)
	defer s.Close()

	c := NewNativeClient(s.URL())

	member, err := c.CheckAudienceMembership(context.Background(), "a83d4aac")

	is.NoErr(err)
	is.True(member)
}

func TestProblemReportIsDecodedIntoErrorClass(t *testing.T) {
	is := is.New(t)

	pd := errors.NewProblemFromError(errors.NewNotInitializedError(), "traceID")
	b, _ := pd.MarshalJSON()

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType(errors.ProblemReportContentType),
			response.Code(http.StatusConflict),
			response.Body(b),
		),
	)
	defer s.Close()

	c := NewNativeClient(s.URL())

	_, err := c.GetUserID(context.Background())

	is.True(goerrors.Is(err, errors.ErrNotInitialized))
	is.Equal(err.Error(), errors.NotInitializedMessage)
}

func TestValidationProblemReportIsDecodedIntoValidationError(t *testing.T) {
	is := is.New(t)

	pd := errors.NewProblemFromError(errors.NewNotIntegerError(), "")
	b, _ := pd.MarshalJSON()

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType(errors.ProblemReportContentType),
			response.Code(http.StatusBadRequest),
			response.Body(b),
		),
	)
	defer s.Close()

	c := NewNativeClient(s.URL())

	err := c.SetDispatchInterval(context.Background(), 5)

	is.True(goerrors.Is(err, errors.ErrNotInteger))
	is.True(goerrors.Is(err, errors.ErrValidation))
}

func TestUnexpectedResponseCodeIsInternalError(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(response.Code(http.StatusAccepted)),
	)
	defer s.Close()

	c := NewNativeClient(s.URL())

	err := c.Dispatch(context.Background())

	is.True(goerrors.Is(err, errors.ErrInternal))
	is.Equal(err.Error(), "unexpected response code 202 (internal error)")
}

func TestMalformedResponseIsBadResponse(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.Code(http.StatusOK),
			response.Body([]byte(`{"value":"not a number"}`)),
		),
	)
	defer s.Close()

	c := NewNativeClient(s.URL(), Debug("true"))

	_, err := c.GetSessionTimeout(context.Background())

	is.True(goerrors.Is(err, errors.ErrBadResponse))
}

func TestUnreachableHostIsRequestError(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(Expects(is, anyInput()), Returns(response.Code(http.StatusNoContent)))
	url := s.URL()
	s.Close()

	c := NewNativeClient(url)

	err := c.StartNewSession(context.Background())

	is.True(goerrors.Is(err, errors.ErrRequest))
}
