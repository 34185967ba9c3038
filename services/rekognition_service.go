package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// RekognitionService runs a cheap label pre-check on meal photos so obvious
// non-food images are rejected before spending a model call.
type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService(ctx context.Context) (*RekognitionService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// RecognizeLabels returns the top labels for a base64 data-URI image.
func (r *RekognitionService) RecognizeLabels(ctx context.Context, dataURI string) ([]string, error) {
	if !strings.HasPrefix(dataURI, "data:image") {
		return nil, fmt.Errorf("invalid data URI")
	}
	parts := strings.SplitN(dataURI, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid data URI")
	}
	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, err
	}

	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(10),
		MinConfidence: aws.Float32(70),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.Labels {
		labels = append(labels, *l.Name)
	}
	return labels, nil
}

var foodLabels = map[string]struct{}{
	"food": {}, "meal": {}, "dish": {}, "plate": {}, "lunch": {}, "dinner": {},
	"breakfast": {}, "dessert": {}, "beverage": {}, "drink": {}, "fruit": {},
	"vegetable": {}, "bread": {}, "curry": {}, "rice": {}, "snack": {},
}

// LooksLikeFood reports whether any detected label is food-related.
func (r *RekognitionService) LooksLikeFood(ctx context.Context, dataURI string) (bool, error) {
	labels, err := r.RecognizeLabels(ctx, dataURI)
	if err != nil {
		return false, err
	}
	for _, l := range labels {
		if _, ok := foodLabels[strings.ToLower(l)]; ok {
			return true, nil
		}
	}
	return false, nil
}
