package ingestion

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/price-optimization-api/infrastructure/repository/mocks"
	"github.com/vfg2006/price-optimization-api/internal/config"
	"github.com/vfg2006/price-optimization-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const csvHeader = "product_id,product_category_name,product_name_lenght,product_description_lenght," +
	"product_photos_qty,product_weight_g,product_score,volume,month_year,qty,total_price," +
	"freight_price,unit_price,comp_1,ps1,fp1,comp_2,ps2,fp2,comp_3,ps3,fp3,lag_price," +
	"customers,weekday,weekend,holiday,month,year,s\n"

func writeCSV(t *testing.T, rows string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "retail_price.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvHeader+rows), 0o600))
	return path
}

// fakeDB executa o fn da transação diretamente e conta rollbacks (fn com erro)
type fakeDB struct {
	commits   int
	rollbacks int
}

func (f *fakeDB) RunInTransaction(_ context.Context, fn func(*sql.Tx) error) error {
	if err := fn(nil); err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}

func newTestService(path string, maxRetries int, ctrl *gomock.Controller) (
	*Service,
	*fakeDB,
	*mocks.MockProductRepository,
	*mocks.MockPriceHistoryRepository,
	*mocks.MockCompetitorPriceRepository,
) {
	db := &fakeDB{}
	productRepo := mocks.NewMockProductRepository(ctrl)
	historyRepo := mocks.NewMockPriceHistoryRepository(ctrl)
	competitorRepo := mocks.NewMockCompetitorPriceRepository(ctrl)

	service := NewService(db, productRepo, historyRepo, competitorRepo, config.IngestionSync{
		CSVPath:           path,
		MaxRetries:        maxRetries,
		RetryDelaySeconds: 0,
	})

	return service, db, productRepo, historyRepo, competitorRepo
}

func TestService_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// P1 é novo e aparece em duas linhas (uma com concorrente); P2 já existe
	rows := "P1,bed_bath_table,40,280,2,650,4.1,1200,05-2017,45,4000.5,60.2,88.9," +
		"85.0,4.0,55.1,,,,,,,90.5,120,22,8,1,5,2017,0.65\n" +
		"P1,bed_bath_table,40,280,2,650,4.1,1200,06-2017,50,4500.0,58.0,90.0," +
		",,,,,,,,,88.9,130,21,9,0,6,2017,0.7\n" +
		"P2,garden_tools,50,500,3,900,3.9,2000,06-2017,12,1200.0,30.0,100.0," +
		",,,,,,,,,99.0,40,21,9,0,6,2017,0.5\n"

	service, db, productRepo, historyRepo, competitorRepo := newTestService(writeCSV(t, rows), 0, ctrl)

	productRepo.EXPECT().GetByProductID("P1").Return(nil, nil)
	productRepo.EXPECT().Insert(gomock.Any()).DoAndReturn(func(p *domain.Product) error {
		assert.Equal(t, "P1", p.ProductID)
		assert.Equal(t, "bed_bath_table", p.ProductCategoryName)
		assert.NotEmpty(t, p.ID)
		return nil
	})
	productRepo.EXPECT().GetByProductID("P2").Return(&domain.Product{ID: "existing-id", ProductID: "P2"}, nil)

	historyRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	batchSizes := make([]int, 0, 3)
	competitorRepo.EXPECT().InsertBatchTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ *sql.Tx, prices []*domain.CompetitorPrice) error {
		batchSizes = append(batchSizes, len(prices))
		return nil
	}).Times(3)

	summary, err := service.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.ProductsInserted)
	assert.Equal(t, 1, summary.ProductsSkipped)
	assert.Equal(t, 3, summary.HistoryInserted)
	assert.Equal(t, 1, summary.CompetitorsInserted)
	assert.Equal(t, 0, summary.RowsFailed)
	assert.Equal(t, 0, summary.RowsDiscarded)
	assert.Equal(t, []int{1, 0, 0}, batchSizes)
	assert.Equal(t, 3, db.commits)
	assert.Equal(t, 0, db.rollbacks)
}

func TestService_Run_RetentaLinhaComFalha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := "P1,garden_tools,50,500,3,900,3.9,2000,06-2017,12,1200.0,30.0,100.0," +
		",,,,,,,,,99.0,40,21,9,0,6,2017,0.5\n"

	service, db, productRepo, historyRepo, competitorRepo := newTestService(writeCSV(t, rows), 2, ctrl)

	productRepo.EXPECT().GetByProductID("P1").Return(&domain.Product{ID: "id-1"}, nil)

	gomock.InOrder(
		historyRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any()).Return(errors.New("conexão perdida")),
		historyRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any()).Return(nil),
	)
	competitorRepo.EXPECT().InsertBatchTx(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := service.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.HistoryInserted)
	assert.Equal(t, 0, summary.RowsFailed)
	assert.Equal(t, 1, db.commits)
	assert.Equal(t, 1, db.rollbacks)
}

func TestService_Run_FalhaDeConcorrenteNaoDuplicaHistorico(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Linha com um concorrente: o insert do histórico passa, o lote de
	// concorrentes falha na primeira tentativa e passa na segunda
	rows := "P1,garden_tools,50,500,3,900,3.9,2000,06-2017,12,1200.0,30.0,100.0," +
		"95.0,4.2,25.0,,,,,,,99.0,40,21,9,0,6,2017,0.5\n"

	service, db, productRepo, historyRepo, competitorRepo := newTestService(writeCSV(t, rows), 1, ctrl)

	productRepo.EXPECT().GetByProductID("P1").Return(&domain.Product{ID: "id-1"}, nil)

	historyIDs := make([]string, 0, 2)
	historyRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ *sql.Tx, entry *domain.PriceHistoryEntry) error {
		historyIDs = append(historyIDs, entry.ID)
		return nil
	}).Times(2)

	gomock.InOrder(
		competitorRepo.EXPECT().InsertBatchTx(gomock.Any(), gomock.Any()).Return(errors.New("conexão perdida")),
		competitorRepo.EXPECT().InsertBatchTx(gomock.Any(), gomock.Any()).Return(nil),
	)

	summary, err := service.Run(context.Background())
	require.NoError(t, err)

	// A primeira tentativa sofre rollback; a retentativa reaplica exatamente a
	// mesma linha, com o mesmo ID - apenas uma linha de histórico persiste
	require.Len(t, historyIDs, 2)
	assert.Equal(t, historyIDs[0], historyIDs[1])
	assert.Equal(t, 1, db.rollbacks)
	assert.Equal(t, 1, db.commits)

	assert.Equal(t, 1, summary.HistoryInserted)
	assert.Equal(t, 1, summary.CompetitorsInserted)
	assert.Equal(t, 0, summary.RowsFailed)
}

func TestService_Run_LinhaFalhaAposEsgotarTentativas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := "P1,garden_tools,50,500,3,900,3.9,2000,06-2017,12,1200.0,30.0,100.0," +
		",,,,,,,,,99.0,40,21,9,0,6,2017,0.5\n"

	service, db, productRepo, historyRepo, _ := newTestService(writeCSV(t, rows), 2, ctrl)

	productRepo.EXPECT().GetByProductID("P1").Return(&domain.Product{ID: "id-1"}, nil)

	// maxRetries = 2 permite 3 tentativas no total
	historyRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any()).Return(errors.New("banco indisponível")).Times(3)

	summary, err := service.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.HistoryInserted)
	assert.Equal(t, 1, summary.RowsFailed)
	assert.Equal(t, 0, db.commits)
	assert.Equal(t, 3, db.rollbacks)
}

func TestService_Run_DescartaLinhaIlegivel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Segunda linha sem product_id e terceira com qty não numérico
	rows := "P1,garden_tools,50,500,3,900,3.9,2000,06-2017,12,1200.0,30.0,100.0," +
		",,,,,,,,,99.0,40,21,9,0,6,2017,0.5\n" +
		",garden_tools,50,500,3,900,3.9,2000,06-2017,12,1200.0,30.0,100.0," +
		",,,,,,,,,99.0,40,21,9,0,6,2017,0.5\n" +
		"P3,garden_tools,50,500,3,900,3.9,2000,06-2017,abc,1200.0,30.0,100.0," +
		",,,,,,,,,99.0,40,21,9,0,6,2017,0.5\n"

	service, _, productRepo, historyRepo, competitorRepo := newTestService(writeCSV(t, rows), 0, ctrl)

	productRepo.EXPECT().GetByProductID("P1").Return(&domain.Product{ID: "id-1"}, nil)
	historyRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any()).Return(nil)
	competitorRepo.EXPECT().InsertBatchTx(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := service.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.RowsDiscarded)
	assert.Equal(t, 1, summary.HistoryInserted)
}
