package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pos-labs/product-catalog-service/config"
	"github.com/pos-labs/product-catalog-service/internal/dto"
	"github.com/pos-labs/product-catalog-service/internal/repository"
	"github.com/pos-labs/product-catalog-service/pkg/errs"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventProducer is satisfied by *kafka.Conn and by test fakes.
type EventProducer interface {
	WriteMessages(msgs ...kafka.Message) (n int, err error)
}

type ProductServiceImpl struct {
	mongoDBRepo   repository.MongoDBProductRepository
	config        config.Config
	kafkaProducer EventProducer
}

func CreateProductService(mongoDBRepo repository.MongoDBProductRepository, config config.Config, kafkaProducer EventProducer) ProductService {
	return &ProductServiceImpl{mongoDBRepo: mongoDBRepo, config: config, kafkaProducer: kafkaProducer}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) (data []dto.ProductResponse, err error) {
	records, err := s.mongoDBRepo.GetProducts(ctx)
	if err != nil {
		return
	}

	data = make([]dto.ProductResponse, 0, len(records))
	for _, record := range records {
		data = append(data, dto.ToProductResponse(record))
	}

	return data, nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (product dto.ProductResponse, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, errs.ErrClient
	}

	record, err := s.mongoDBRepo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}

	return dto.ToProductResponse(record), nil
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (product dto.ProductResponse, err error) {
	// Storage assigns the id; whatever the client sent is discarded.
	data.ID = ""

	productID, err := s.mongoDBRepo.AddProduct(ctx, dto.ToProduct(data))
	if err != nil {
		return
	}

	data.ID = productID.Hex()
	product = dto.ProductResponse(data)

	s.publishEvent(ctx, "product_created", product)

	return product, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, data dto.ProductRequest) (acknowledged bool, err error) {
	productID, err := primitive.ObjectIDFromHex(data.ID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return false, errs.ErrClient
	}

	acknowledged, err = s.mongoDBRepo.ReplaceProduct(ctx, productID, dto.ToProduct(data))
	if err != nil {
		return
	}

	s.publishEvent(ctx, "product_updated", dto.ProductResponse(data))

	return acknowledged, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (acknowledged bool, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return false, errs.ErrClient
	}

	acknowledged, err = s.mongoDBRepo.DeleteProduct(ctx, productID)
	if err != nil {
		return
	}

	s.publishEvent(ctx, "product_deleted", dto.ProductResponse{ID: id})

	return acknowledged, nil
}

// publishEvent emits a catalog change event. Publication is best-effort: the
// write already succeeded, so a broker failure is logged and never surfaces
// to the HTTP caller.
func (s *ProductServiceImpl) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.kafkaProducer == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		err = s.writeKafkaMessage(jsonMsg)
		if err == nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		time.Sleep(time.Second * time.Duration(i+1))
	}

	log.Ctx(ctx).Error().Err(err).Str("event_type", eventType).Msgf("giving up after %d attempts", maxRetries)
}

func (s *ProductServiceImpl) writeKafkaMessage(msg []byte) error {
	_, err := s.kafkaProducer.WriteMessages(
		kafka.Message{
			Value: msg,
		},
	)
	return err
}
