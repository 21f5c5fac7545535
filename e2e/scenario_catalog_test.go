package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "cinema-lab/proto/cinema"
)

type CatalogSuite struct {
	BaseGrpcSuite
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}

func (s *CatalogSuite) TestGetFilms() {
	s.WithCinema("GetFilms", func(ctx context.Context, client pb.CinemaClient) {
		response, err := client.GetFilms(ctx, &pb.Empty{})
		s.Require().NoError(err)
		s.Require().Len(response.Films, 3)
		s.Equal("Dune: Part Two", response.Films[1].Name)
	})
}

func (s *CatalogSuite) TestGetFilmScreenings_RejectsMalformedID() {
	s.WithCinema("GetFilmScreenings invalid", func(ctx context.Context, client pb.CinemaClient) {
		_, err := client.GetFilmScreenings(ctx, &pb.GetFilmScreeningsRequest{FilmId: -1})
		s.Require().Error(err)
		s.Equal(codes.InvalidArgument, status.Code(err))
	})
}

func (s *CatalogSuite) TestSubscribe_RejectsEmptyRequest() {
	s.WithCinema("SubscribeScreenings empty", func(ctx context.Context, client pb.CinemaClient) {
		stream, err := client.SubscribeScreenings(ctx, &pb.SubscribeScreeningsRequest{})
		s.Require().NoError(err)
		_, err = stream.Recv()
		s.Require().Error(err)
		s.Equal(codes.InvalidArgument, status.Code(err))
	})
}

func (s *CatalogSuite) TestSubscribe_ReceivesInitialBatch() {
	s.WithCinema("SubscribeScreenings film 2", func(ctx context.Context, client pb.CinemaClient) {
		stream, err := client.SubscribeScreenings(ctx, &pb.SubscribeScreeningsRequest{
			FilmIds: []int32{2},
		})
		s.Require().NoError(err)

		// The seeded catalog has at least one screening for film 2;
		// the first batch is the full current bucket.
		batch, err := stream.Recv()
		s.Require().NoError(err)
		s.Require().NotEmpty(batch.Screenings)
		s.Equal(int32(2), batch.Screenings[0].FilmId)
	})
}
