package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/rfinnegan/account-portal/config"
	"github.com/rfinnegan/account-portal/internal/session"
	"github.com/rfinnegan/account-portal/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	issuer      *helpers.TokenIssuer
	visitorBag  *session.Store
)

func SetConfig(c *config.Config)       { cfg = c }
func GetConfig() *config.Config        { return cfg }
func SetLogger(l *logrus.Logger)       { logger = l }
func GetLogger() *logrus.Logger        { return logger }
func SetPGPool(p *pgxpool.Pool)        { pgPool = p }
func GetPGPool() *pgxpool.Pool         { return pgPool }
func SetRedis(r *redis.Client)         { redisClient = r }
func GetRedis() *redis.Client          { return redisClient }
func SetIssuer(i *helpers.TokenIssuer) { issuer = i }
func GetIssuer() *helpers.TokenIssuer  { return issuer }
func SetSessionBag(s *session.Store)   { visitorBag = s }
func GetSessionBag() *session.Store    { return visitorBag }
