package jobs

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/wmcgee3/zosmf/endpoint"
	"github.com/wmcgee3/zosmf/zosmftest"
)

func offline() *Client {
	return New(&endpoint.Core{BaseURL: "https://zosmf.example.com"})
}

const jcl = "//TESTJOBX JOB (),MSGCLASS=H\n// EXEC PGM=IEFBR14\n"

func TestSubmitRequest(t *testing.T) {
	tests := []struct {
		name  string
		build func(c *Client) endpoint.Request
		want  string
	}{
		{
			name: "text",
			build: func(c *Client) endpoint.Request {
				return c.Submit(Text(jcl)).MessageClass("A").RecordFormat(RecordFormatFixed).RecordLength(80).request()
			},
			want: "PUT /zosmf/restjobs/jobs\n" +
				"X-IBM-Intrdr-Class: A\n" +
				"X-IBM-Intrdr-Recfm: F\n" +
				"X-IBM-Intrdr-Lrecl: 80\n" +
				"Content-Type: text/plain\n" +
				"X-IBM-Intrdr-Mode: TEXT\n" +
				"\n" + jcl,
		},
		{
			name: "notification events sorted and unique",
			build: func(c *Client) endpoint.Request {
				return c.Submit(Text(jcl)).NotificationEvents(EventReady, EventActive, EventReady).request()
			},
			want: "PUT /zosmf/restjobs/jobs\n" +
				"Content-Type: text/plain\n" +
				"X-IBM-Intrdr-Mode: TEXT\n" +
				`X-IBM-Notification-Options: {"events": ["active", "ready"]}` + "\n" +
				"\n" + jcl,
		},
		{
			name: "dataset with symbols",
			build: func(c *Client) endpoint.Request {
				return c.Submit(Dataset("IBMUSER.CNTL(IEFBR14)")).
					Subsystem("JES3").
					Symbols(map[string]string{"VOL": "VOL001", "HLQ": "IBMUSER"}).
					request()
			},
			want: "PUT /zosmf/restjobs/jobs/-JES3\n" +
				"X-IBM-JCL-Symbol-HLQ: IBMUSER\n" +
				"X-IBM-JCL-Symbol-VOL: VOL001\n" +
				"Content-Type: application/json\n" +
				"\n" +
				`{"file":"//'IBMUSER.CNTL(IEFBR14)'"}`,
		},
		{
			name: "file",
			build: func(c *Client) endpoint.Request {
				return c.Submit(File("/u/ibmuser/job.jcl")).Encoding("IBM-037").request()
			},
			want: "PUT /zosmf/restjobs/jobs\n" +
				"Content-Type: application/json\n" +
				"X-IBM-Intrdr-File-Encoding: IBM-037\n" +
				"\n" +
				`{"file":"/u/ibmuser/job.jcl"}`,
		},
		{
			name: "record",
			build: func(c *Client) endpoint.Request {
				return c.Submit(Record([]byte("JCL"))).request()
			},
			want: "PUT /zosmf/restjobs/jobs\n" +
				"Content-Type: application/octet-stream\n" +
				"X-IBM-Intrdr-Mode: RECORD\n" +
				"\n" +
				"JCL",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build(offline()).String(); got != tt.want {
				t.Errorf("request =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestSubmitWithoutSource(t *testing.T) {
	_, err := offline().Submit(Source{}).HTTPRequest(context.Background())
	if endpoint.KindOf(err) != endpoint.KindAssembly || !errors.Is(err, errNoSource) {
		t.Errorf("HTTPRequest() error = %v, want assembly error", err)
	}
}

func TestSubmit(t *testing.T) {
	srv := zosmftest.NewServer(t)
	srv.Handle(http.MethodPut, "/zosmf/restjobs/jobs", zosmftest.JSON(http.StatusCreated, map[string]any{
		"jobid":     "JOB00023",
		"jobname":   "TESTJOBX",
		"owner":     "IBMUSER",
		"status":    "INPUT",
		"type":      "JOB",
		"class":     "A",
		"retcode":   nil,
		"url":       "https://zosmf.example.com/zosmf/restjobs/jobs/TESTJOBX/JOB00023",
		"files-url": "https://zosmf.example.com/zosmf/restjobs/jobs/TESTJOBX/JOB00023/files",
		"phase":     130,
	}))

	job, err := New(srv.Core()).Submit(Text(jcl)).Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if job.Identifier() != "TESTJOBX/JOB00023" || job.Status != StatusInput || job.Type != TypeJob {
		t.Errorf("job = %+v", job)
	}
	if job.ReturnCode != nil {
		t.Errorf("ReturnCode = %q, want nil", *job.ReturnCode)
	}
	if got := string(srv.Last().Body); got != jcl {
		t.Errorf("body = %q", got)
	}
}

func TestStatusConvergentNarrowing(t *testing.T) {
	id := NameID("BLSJPRMI", "STC00052")
	execFirst := offline().Status(id).ExecData().StepData().request()
	stepFirst := offline().Status(id).StepData().ExecData().request()

	want := "GET /zosmf/restjobs/jobs/BLSJPRMI/STC00052?exec-data=Y&step-data=Y\n"
	if got := execFirst.String(); got != want {
		t.Errorf("ExecData().StepData() =\n%s\nwant\n%s", got, want)
	}
	if got := stepFirst.String(); got != want {
		t.Errorf("StepData().ExecData() =\n%s\nwant\n%s", got, want)
	}
}

func TestStatusRepeatedNarrowing(t *testing.T) {
	id := NameID("BLSJPRMI", "STC00052")
	got := offline().Status(id).ExecData().ExecData().request().String()
	want := "GET /zosmf/restjobs/jobs/BLSJPRMI/STC00052?exec-data=Y\n"
	if got != want {
		t.Errorf("ExecData().ExecData() =\n%s\nwant\n%s", got, want)
	}
}

func TestStatus(t *testing.T) {
	srv := zosmftest.NewServer(t)
	srv.Handle(http.MethodGet, "/zosmf/restjobs/jobs/BLSJPRMI/STC00052", zosmftest.JSON(http.StatusOK, map[string]any{
		"jobid":       "STC00052",
		"jobname":     "BLSJPRMI",
		"owner":       "IBMUSER",
		"status":      "OUTPUT",
		"type":        "STC",
		"retcode":     "CC 0000",
		"exec-system": "SY1",
		"step-data": []map[string]any{
			{"active": false, "smfid": "SY1", "step-number": 1, "step-name": "STEP1", "program-name": "IEFBR14", "completion": "CC 0000"},
		},
	}))

	got, err := New(srv.Core()).Status(NameID("BLSJPRMI", "STC00052")).StepData().Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got.ReturnCode == nil || *got.ReturnCode != "CC 0000" || got.ExecSystem != "SY1" {
		t.Errorf("got %+v", got)
	}
	if len(got.Steps) != 1 || got.Steps[0].Name != "STEP1" || got.Steps[0].CompletionCode != "CC 0000" {
		t.Errorf("Steps = %+v", got.Steps)
	}
	if q := srv.Last().RawQuery; q != "step-data=Y" {
		t.Errorf("query = %q", q)
	}
}

func TestList(t *testing.T) {
	srv := zosmftest.NewServer(t)
	srv.Handle(http.MethodGet, "/zosmf/restjobs/jobs", zosmftest.JSON(http.StatusOK, []map[string]any{
		{"jobid": "JOB00001", "jobname": "TESTJOB1", "owner": "IBMUSER", "status": "ACTIVE", "exec-member": "SY1"},
		{"jobid": "JOB00002", "jobname": "TESTJOB2", "owner": "IBMUSER", "status": "ACTIVE"},
	}))

	got, err := New(srv.Core()).List().Owner("IBMUSER").Prefix("TESTJOB*").ActiveOnly(true).ExecData().Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(got.Items) != 2 || got.Items[0].ExecMember != "SY1" || got.Items[1].Identifier() != NameID("TESTJOB2", "JOB00002") {
		t.Errorf("got %+v", got)
	}
	if q := srv.Last().RawQuery; q != "owner=IBMUSER&prefix=TESTJOB%2A&exec-data=Y&status=active" {
		t.Errorf("query = %q", q)
	}
}

func TestPurge(t *testing.T) {
	srv := zosmftest.NewServer(t)
	path := "/zosmf/restjobs/jobs/TESTJOBW/JOB00085"
	srv.Handle(http.MethodDelete, path, zosmftest.JSON(http.StatusOK, map[string]any{
		"jobid":          "JOB00085",
		"jobname":        "TESTJOBW",
		"owner":          "IBMUSER",
		"member":         "JES2",
		"sysname":        "SY1",
		"job-correlator": "J0000085SY1.....CC20F378.......:",
		"status":         "0",
	}))
	c := New(srv.Core())
	id := NameID("TESTJOBW", "JOB00085")

	feedback, err := c.Purge(id).Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if feedback.Status != "0" || feedback.SystemName != "SY1" {
		t.Errorf("feedback = %+v", feedback)
	}
	if v := srv.Last().Header.Get("X-IBM-Job-Modify-Version"); v != "2.0" {
		t.Errorf("synchronous version = %q, want 2.0", v)
	}

	srv.Handle(http.MethodDelete, path, zosmftest.Status(http.StatusAccepted))
	if _, err := c.Purge(id).Asynchronous().Build(context.Background()); err != nil {
		t.Fatalf("asynchronous Build() error = %v", err)
	}
	if v := srv.Last().Header.Get("X-IBM-Job-Modify-Version"); v != "1.0" {
		t.Errorf("asynchronous version = %q, want 1.0", v)
	}
}

func TestModifyRequest(t *testing.T) {
	tests := []struct {
		name string
		req  endpoint.Request
		want string
	}{
		{
			name: "hold",
			req:  offline().Hold(NameID("TESTJOBW", "JOB00023")).request(),
			want: `{"request":"hold","version":"2.0"}`,
		},
		{
			name: "release asynchronously",
			req:  offline().Release(NameID("TESTJOBW", "JOB00023")).Asynchronous().request(),
			want: `{"request":"release","version":"1.0"}`,
		},
		{
			name: "cancel by correlator",
			req:  offline().Cancel(Correlator("J0000085SY1.....CC20F378.......:")).Subsystem("JES2").request(),
			want: `{"request":"cancel","version":"2.0"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.req.Method() != http.MethodPut {
				t.Errorf("method = %s", tt.req.Method())
			}
			if got := string(tt.req.Body()); got != tt.want {
				t.Errorf("body = %s, want %s", got, tt.want)
			}
		})
	}

	path := offline().Cancel(Correlator("J0000085SY1.....CC20F378.......:")).Subsystem("JES2").path()
	if path != "/zosmf/restjobs/jobs/-JES2/J0000085SY1.....CC20F378.......:" {
		t.Errorf("path = %q", path)
	}
}

func TestFiles(t *testing.T) {
	srv := zosmftest.NewServer(t)
	srv.Handle(http.MethodGet, "/zosmf/restjobs/jobs/TESTJOB1/JOB00023/files", zosmftest.JSON(http.StatusOK, []map[string]any{
		{"jobname": "TESTJOB1", "recfm": "UA", "byte-count": 1200, "record-count": 21, "class": "A", "jobid": "JOB00023", "id": 2, "ddname": "JESMSGLG", "lrecl": 133, "subsystem": "JES2", "stepname": "JES2", "records-url": "https://zosmf/restjobs/jobs/TESTJOB1/JOB00023/files/2/records"},
		{"jobname": "TESTJOB1", "recfm": "V", "byte-count": 300, "record-count": 5, "class": "A", "jobid": "JOB00023", "id": 3, "ddname": "JESJCL", "lrecl": 136, "subsystem": "JES2"},
	}))

	got, err := New(srv.Core()).Files(NameID("TESTJOB1", "JOB00023")).Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("got %d files, want 2", len(got.Items))
	}
	if f := got.Items[0]; f.ID != 2 || f.DDName != "JESMSGLG" || f.RecordLength != 133 || f.ByteCount != 1200 || f.StepName != "JES2" {
		t.Errorf("file = %+v", f)
	}
}

func TestReadFileRequest(t *testing.T) {
	id := NameID("TESTJOBJ", "JOB00023")
	tests := []struct {
		name  string
		build func(c *Client) endpoint.Request
		want  string
	}{
		{
			name: "default",
			build: func(c *Client) endpoint.Request {
				return c.ReadFile(id, FileNumber(1)).request()
			},
			want: "GET /zosmf/restjobs/jobs/TESTJOBJ/JOB00023/files/1/records\n",
		},
		{
			name: "record range",
			build: func(c *Client) endpoint.Request {
				return c.ReadFile(id, FileNumber(8)).RecordRange(Records(0, 249)).request()
			},
			want: "GET /zosmf/restjobs/jobs/TESTJOBJ/JOB00023/files/8/records\n" +
				"X-IBM-Record-Range: 0-249\n",
		},
		{
			name: "jcl",
			build: func(c *Client) endpoint.Request {
				return c.ReadFile(NameID("TESTJOBJ", "JOB00060"), FileJCL).request()
			},
			want: "GET /zosmf/restjobs/jobs/TESTJOBJ/JOB00060/files/JCL/records\n",
		},
		{
			name: "search",
			build: func(c *Client) endpoint.Request {
				return c.ReadFile(id, FileNumber(2)).Text().Encoding("IBM-037").Search("IEF").CaseSensitive(true).MaxReturn(10).request()
			},
			want: "GET /zosmf/restjobs/jobs/TESTJOBJ/JOB00023/files/2/records?mode=text&fileEncoding=IBM-037&search=IEF&insensitive=false&maxreturnsize=10\n",
		},
		{
			name: "record on subsystem",
			build: func(c *Client) endpoint.Request {
				return c.ReadFile(id, FileNumber(2)).Subsystem("JES3").Record().request()
			},
			want: "GET /zosmf/restjobs/jobs/-JES3/TESTJOBJ/JOB00023/files/2/records?mode=record\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build(offline()).String(); got != tt.want {
				t.Errorf("request =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	srv := zosmftest.NewServer(t)
	path := "/zosmf/restjobs/jobs/TESTJOBJ/JOB00023/files/2/records"
	srv.Handle(http.MethodGet, path, zosmftest.Text(http.StatusOK, "IEF142I TESTJOBJ STEP1 - STEP WAS EXECUTED - COND CODE 0000\n"))

	c := New(srv.Core())
	text, err := c.ReadFile(NameID("TESTJOBJ", "JOB00023"), FileNumber(2)).Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if text.Data != "IEF142I TESTJOBJ STEP1 - STEP WAS EXECUTED - COND CODE 0000\n" {
		t.Errorf("Data = %q", text.Data)
	}

	srv.Handle(http.MethodGet, path, zosmftest.Bytes(http.StatusOK, []byte{0xC9, 0xC5, 0xC6}))
	raw, err := c.ReadFile(NameID("TESTJOBJ", "JOB00023"), FileNumber(2)).Binary().Build(context.Background())
	if err != nil {
		t.Fatalf("Binary().Build() error = %v", err)
	}
	if string(raw.Data) != "\xc9\xc5\xc6" {
		t.Errorf("Data = %x", raw.Data)
	}
	if q := srv.Last().RawQuery; q != "mode=binary" {
		t.Errorf("query = %q", q)
	}
}
